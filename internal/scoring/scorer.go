// Package scoring implements the deterministic propensity-to-buy score:
// five independent criteria combined into a normalized 0-100 total.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/location"
)

// Input is the per-lead view the scorer consumes. Callers assemble it
// from an enriched lead; the scorer never sees raw records.
type Input struct {
	Title              string
	Location           string
	CompanyDescription string
	Funding            *lead.FundingInfo
	Publications       []lead.Publication
}

// Breakdown carries the five sub-scores alongside the raw and normalized
// totals.
type Breakdown struct {
	RoleFit          int `json:"role_fit"`
	CompanyIntent    int `json:"company_intent"`
	Technographic    int `json:"technographic"`
	Location         int `json:"location"`
	ScientificIntent int `json:"scientific_intent"`
	TotalRaw         int `json:"total_raw"`
	Total            int `json:"total"`
}

// Scorer evaluates leads against a keyword/threshold configuration.
type Scorer struct {
	cfg Config
	loc *location.Classifier

	// Now is the clock used for recency checks; overridable in tests.
	Now func() time.Time
}

// NewScorer builds a Scorer. The classifier supplies the location
// sub-score.
func NewScorer(cfg Config, loc *location.Classifier) *Scorer {
	return &Scorer{cfg: cfg, loc: loc, Now: time.Now}
}

// RoleFit scores a job title 0-30 against the three keyword tiers.
func (s *Scorer) RoleFit(title string) int {
	if title == "" {
		return 0
	}
	lowered := strings.ToLower(title)

	high := countMatches(lowered, s.cfg.RoleFit.HighValue)
	medium := countMatches(lowered, s.cfg.RoleFit.MediumValue)
	low := countMatches(lowered, s.cfg.RoleFit.LowValue)

	switch {
	case high >= 2:
		return 30
	case high == 1 && medium >= 1:
		return 25
	case high == 1:
		return 20
	case medium >= 2:
		return 15
	case medium == 1 || low >= 1:
		return 10
	}
	return 0
}

// CompanyIntent scores funding signals 0-20. A nil funding view scores 0
// and recency is not consulted.
func (s *Scorer) CompanyIntent(funding *lead.FundingInfo) int {
	if funding == nil {
		return 0
	}

	round := strings.ToLower(funding.Round)
	base := s.cfg.Funding.DefaultScore
	for _, rs := range s.cfg.Funding.Rounds {
		if strings.Contains(round, rs.Match) {
			base = rs.Score
			break
		}
	}

	if s.isRecent(funding.Date, s.cfg.Funding.RecencyDays) {
		base += s.cfg.Funding.RecencyBonus
		if base > MaxCompanyIntent {
			base = MaxCompanyIntent
		}
	}
	return base
}

// Technographic scores a company description 0-15 by counting relevant
// technology keywords.
func (s *Scorer) Technographic(description string) int {
	if description == "" {
		return 0
	}
	matches := countMatches(strings.ToLower(description), s.cfg.Technographic.Keywords)
	switch {
	case matches >= 4:
		return 15
	case matches == 3:
		return 12
	case matches == 2:
		return 8
	case matches == 1:
		return 5
	}
	return 0
}

// LocationScore scores hub proximity 0-10 via the classifier.
func (s *Scorer) LocationScore(loc string) int {
	return s.loc.Score(loc)
}

// ScientificIntent scores publications 0-40. Each publication
// contributes by keyword-match count and recency; contributions sum and
// are capped.
func (s *Scorer) ScientificIntent(publications []lead.Publication) int {
	if len(publications) == 0 {
		return 0
	}

	score := 0
	for _, pub := range publications {
		text := strings.ToLower(pub.Title + " " + pub.Abstract)
		matches := countMatches(text, s.cfg.Scientific.Keywords)
		recent := s.isRecent(pub.Date, s.cfg.Scientific.RecencyDays)

		switch {
		case matches >= 3 && recent:
			score += 20
		case matches >= 2 && recent:
			score += 15
		case matches >= 1 && recent:
			score += 10
		case matches >= 2:
			score += 8
		case matches >= 1:
			score += 5
		}
	}

	if score > MaxScientificIntent {
		return MaxScientificIntent
	}
	return score
}

// Total evaluates all five criteria and normalizes the raw sum onto
// 0-100.
func (s *Scorer) Total(in Input) Breakdown {
	b := Breakdown{
		RoleFit:          s.RoleFit(in.Title),
		CompanyIntent:    s.CompanyIntent(in.Funding),
		Technographic:    s.Technographic(in.CompanyDescription),
		Location:         s.LocationScore(in.Location),
		ScientificIntent: s.ScientificIntent(in.Publications),
	}
	b.TotalRaw = b.RoleFit + b.CompanyIntent + b.Technographic + b.Location + b.ScientificIntent

	total := int(math.Round(float64(b.TotalRaw) / float64(MaxRaw) * 100))
	if total > 100 {
		total = 100
	}
	b.Total = total
	return b
}

// isRecent reports whether the date string parses and falls within the
// trailing window. Unparseable dates are conservatively not recent.
func (s *Scorer) isRecent(date string, windowDays int) bool {
	if date == "" {
		return false
	}
	parsed, ok := parseDate(date)
	if !ok {
		return false
	}
	cutoff := s.Now().AddDate(0, 0, -windowDays)
	return parsed.After(cutoff)
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// countMatches counts how many keywords appear as substrings of the
// already-lowercased text.
func countMatches(lowered string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			count++
		}
	}
	return count
}
