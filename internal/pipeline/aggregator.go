// Package pipeline runs the lead batch through its single forward pass:
// dedupe, enrich, score, rank. Failures are isolated per lead; the batch
// never aborts.
package pipeline

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/euprime/leadrank/internal/config"
	"github.com/euprime/leadrank/internal/email"
	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/location"
	"github.com/euprime/leadrank/internal/scoring"
)

// Aggregator wires the classifier, inferrer, and scorer into the batch
// pipeline.
type Aggregator struct {
	classifier *location.Classifier
	inferrer   *email.Inferrer
	scorer     *scoring.Scorer
	logger     zerolog.Logger
}

// Dropped records a lead excluded by per-lead error isolation.
type Dropped struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Reason  string `json:"reason"`
}

// Result is the outcome of a full pipeline run: the ranked survivors and
// the leads dropped along the way.
type Result struct {
	Leads   []lead.Lead `json:"leads"`
	Dropped []Dropped   `json:"dropped,omitempty"`
}

// New builds an Aggregator from a validated configuration.
func New(cfg *config.Config, logger zerolog.Logger) *Aggregator {
	classifier := location.NewClassifier(cfg.Locations)
	return &Aggregator{
		classifier: classifier,
		inferrer:   email.NewInferrer(cfg.Email),
		scorer:     scoring.NewScorer(cfg.Scoring, classifier),
		logger:     logger,
	}
}

// Scorer exposes the underlying scorer, mainly so callers can pin its
// clock.
func (a *Aggregator) Scorer() *scoring.Scorer { return a.scorer }

// Dedupe keeps the first occurrence per (name, company) key and drops
// records with an empty name or company. First-seen order is preserved.
func (a *Aggregator) Dedupe(leads []lead.Lead) []lead.Lead {
	seen := make(map[[2]string]bool, len(leads))
	unique := make([]lead.Lead, 0, len(leads))

	for _, l := range leads {
		if !l.Keyable() {
			continue
		}
		name, company := l.DedupKey()
		key := [2]string{name, company}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, l)
	}

	a.logger.Info().
		Int("input", len(leads)).
		Int("unique", len(unique)).
		Msg("deduplicated leads")
	return unique
}

// Enrich derives missing fields on a single lead: location split, email
// inference, and the hub tag (always recomputed).
func (a *Aggregator) Enrich(l *lead.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	if l.PersonLocation == "" && l.CompanyHQ == "" && l.Location != "" {
		split := a.classifier.SplitCombined(l.Location)
		l.PersonLocation = split.PersonLocation
		l.CompanyHQ = split.CompanyHQ
	}

	if l.Email == "" {
		l.Email = a.inferrer.MostLikely(l.Name, l.Company, l.EmailDomain)
	}

	l.BiotechHub = a.classifier.IdentifyHub(l.ScoringLocation())
	return nil
}

// Score evaluates a single enriched lead and writes its sub-scores and
// total in place.
func (a *Aggregator) Score(l *lead.Lead) error {
	publications, err := resolvePublications(l)
	if err != nil {
		return fmt.Errorf("resolve publications: %w", err)
	}

	breakdown := a.scorer.Total(scoring.Input{
		Title:              l.Title,
		Location:           l.ScoringLocation(),
		CompanyDescription: l.CompanyDescription,
		Funding:            l.Funding(),
		Publications:       publications,
	})

	l.ScoreRoleFit = breakdown.RoleFit
	l.ScoreCompanyIntent = breakdown.CompanyIntent
	l.ScoreTechnographic = breakdown.Technographic
	l.ScoreLocation = breakdown.Location
	l.ScoreScientificIntent = breakdown.ScientificIntent
	l.ScoreTotal = breakdown.Total
	return nil
}

// Process runs the full batch: dedupe, then per-lead enrich and score
// with error isolation, then rank. An empty result is valid output, not
// an error.
func (a *Aggregator) Process(leads []lead.Lead) Result {
	a.logger.Info().Int("count", len(leads)).Msg("processing leads")

	unique := a.Dedupe(leads)

	result := Result{Leads: make([]lead.Lead, 0, len(unique))}
	for _, l := range unique {
		if err := a.processOne(&l); err != nil {
			a.logger.Warn().
				Str("name", l.Name).
				Str("company", l.Company).
				Err(err).
				Msg("dropping lead")
			result.Dropped = append(result.Dropped, Dropped{
				Name:    l.Name,
				Company: l.Company,
				Reason:  err.Error(),
			})
			continue
		}
		result.Leads = append(result.Leads, l)
	}

	Rank(result.Leads)

	a.logger.Info().
		Int("processed", len(result.Leads)).
		Int("dropped", len(result.Dropped)).
		Msg("pipeline completed")
	return result
}

func (a *Aggregator) processOne(l *lead.Lead) error {
	if err := a.Enrich(l); err != nil {
		return fmt.Errorf("enrich: %w", err)
	}
	if err := a.Score(l); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	return nil
}

// Rank sorts leads by total score descending (stable on ties) and
// assigns dense 1-based ranks. It is a pure batch operation so filtering
// layers can re-rank a narrowed subset.
func Rank(leads []lead.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].ScoreTotal > leads[j].ScoreTotal
	})
	for i := range leads {
		leads[i].Rank = i + 1
	}
}
