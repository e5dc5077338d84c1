// Package lead defines the lead record shared across the enrichment and
// scoring pipeline.
package lead

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Lead is a candidate sales prospect combining person and company
// attributes. Derived fields (BiotechHub, the sub-scores, Rank) are
// written by the pipeline and must not be set by callers.
type Lead struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Company string `json:"company"`

	Title          string `json:"title,omitempty"`
	Location       string `json:"location,omitempty"`
	PersonLocation string `json:"person_location,omitempty"`
	CompanyHQ      string `json:"company_hq,omitempty"`
	Email          string `json:"email,omitempty"`
	EmailDomain    string `json:"email_domain,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`

	CompanyDescription string        `json:"company_description,omitempty"`
	FundingRound       string        `json:"funding_round,omitempty"`
	FundingAmount      float64       `json:"funding_amount,omitempty"`
	FundingDate        string        `json:"funding_date,omitempty"`
	Publications       []Publication `json:"publications,omitempty"`
	RecentDILIPaper    bool          `json:"recent_dili_paper,omitempty"`

	// PublicationCount carries the legacy bare-count form of the
	// publications field. It is only consulted by the pipeline's
	// fallback adapter when Publications is empty.
	PublicationCount int `json:"-"`

	BiotechHub string `json:"biotech_hub,omitempty"`

	ScoreRoleFit          int `json:"score_role_fit"`
	ScoreCompanyIntent    int `json:"score_company_intent"`
	ScoreTechnographic    int `json:"score_technographic"`
	ScoreLocation         int `json:"score_location"`
	ScoreScientificIntent int `json:"score_scientific_intent"`
	ScoreTotal            int `json:"score_total"`
	Rank                  int `json:"rank"`
}

// Publication is a single scientific publication attached to a lead.
type Publication struct {
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
	Abstract string `json:"abstract,omitempty"`
}

// FundingInfo is the funding view handed to the scorer. It is only
// assembled when the lead carries a funding round.
type FundingInfo struct {
	Round  string  `json:"round"`
	Amount float64 `json:"amount,omitempty"`
	Date   string  `json:"date,omitempty"`
}

// alias avoids recursing into UnmarshalJSON.
type leadAlias Lead

type leadWire struct {
	leadAlias
	Publications json.RawMessage `json:"publications,omitempty"`
}

// UnmarshalJSON accepts both forms of the publications field: a list of
// publication records, or a bare count from legacy sparse records.
func (l *Lead) UnmarshalJSON(data []byte) error {
	var wire leadWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*l = Lead(wire.leadAlias)
	l.Publications = nil

	if len(wire.Publications) == 0 {
		return nil
	}

	var pubs []Publication
	if err := json.Unmarshal(wire.Publications, &pubs); err == nil {
		l.Publications = pubs
		return nil
	}

	var count int
	if err := json.Unmarshal(wire.Publications, &count); err != nil {
		return fmt.Errorf("publications: expected list or count: %w", err)
	}
	l.PublicationCount = count
	return nil
}

// DedupKey returns the case/whitespace-insensitive identity key used to
// detect duplicate records. Either half being empty marks the record as
// unkeyable and it is dropped at ingest.
func (l *Lead) DedupKey() (string, string) {
	return strings.ToLower(strings.TrimSpace(l.Name)),
		strings.ToLower(strings.TrimSpace(l.Company))
}

// Keyable reports whether the lead carries a usable dedup key.
func (l *Lead) Keyable() bool {
	name, company := l.DedupKey()
	return name != "" && company != ""
}

// Funding assembles the scoring view of the lead's funding data, or nil
// when no round is recorded.
func (l *Lead) Funding() *FundingInfo {
	if l.FundingRound == "" {
		return nil
	}
	return &FundingInfo{
		Round:  l.FundingRound,
		Amount: l.FundingAmount,
		Date:   l.FundingDate,
	}
}

// ScoringLocation returns the location used for scoring: company HQ when
// known, otherwise the person's location.
func (l *Lead) ScoringLocation() string {
	if l.CompanyHQ != "" {
		return l.CompanyHQ
	}
	return l.PersonLocation
}
