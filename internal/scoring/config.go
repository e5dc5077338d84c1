package scoring

// Maximum values per criterion. The raw composite maximum is their sum;
// the reported total is normalized onto 0-100.
const (
	MaxRoleFit          = 30
	MaxCompanyIntent    = 20
	MaxTechnographic    = 15
	MaxLocation         = 10
	MaxScientificIntent = 40

	// MaxRaw is the uncapped composite ceiling used for normalization.
	MaxRaw = MaxRoleFit + MaxCompanyIntent + MaxTechnographic + MaxLocation + MaxScientificIntent
)

// Config supplies the keyword tiers and thresholds driving the five
// criteria. It is data: the same scorer serves any keyword domain.
type Config struct {
	RoleFit       RoleFitConfig       `yaml:"role_fit" validate:"required"`
	Funding       FundingConfig       `yaml:"funding" validate:"required"`
	Technographic TechnographicConfig `yaml:"technographic" validate:"required"`
	Scientific    ScientificConfig    `yaml:"scientific" validate:"required"`
}

// RoleFitConfig holds the three job-title keyword tiers.
type RoleFitConfig struct {
	HighValue   []string `yaml:"high_value" validate:"required,min=1"`
	MediumValue []string `yaml:"medium_value" validate:"required,min=1"`
	LowValue    []string `yaml:"low_value" validate:"required,min=1"`
}

// RoundScore maps a funding-round label substring to its base score.
// Order is significant: the first matching entry wins.
type RoundScore struct {
	Match string `yaml:"match" validate:"required"`
	Score int    `yaml:"score" validate:"min=0"`
}

// FundingConfig drives the company-intent criterion.
type FundingConfig struct {
	Rounds       []RoundScore `yaml:"rounds" validate:"required,min=1,dive"`
	DefaultScore int          `yaml:"default_score" validate:"min=0"`
	RecencyDays  int          `yaml:"recency_days" validate:"required,min=1"`
	RecencyBonus int          `yaml:"recency_bonus" validate:"min=0"`
}

// TechnographicConfig drives the technographic criterion.
type TechnographicConfig struct {
	Keywords []string `yaml:"keywords" validate:"required,min=1"`
}

// ScientificConfig drives the scientific-intent criterion.
type ScientificConfig struct {
	Keywords    []string `yaml:"keywords" validate:"required,min=1"`
	RecencyDays int      `yaml:"recency_days" validate:"required,min=1"`
}
