// Package location normalizes free-text location strings, detects known
// biotech hubs, and scores hub proximity for lead scoring.
package location

import (
	"regexp"
	"strings"
)

// Hub is a named geographic cluster with high biotech industry density.
// Variants are lowercase substrings that identify the hub in dirty input.
type Hub struct {
	Name     string   `yaml:"name" validate:"required"`
	Major    bool     `yaml:"major"`
	Variants []string `yaml:"variants" validate:"required,min=1"`
}

// Country maps a canonical country name to its lowercase aliases.
type Country struct {
	Name    string   `yaml:"name" validate:"required"`
	Aliases []string `yaml:"aliases" validate:"required,min=1"`
}

// Tables holds the classification data a Classifier is built from. Hub
// and country order is significant: the first matching entry wins.
type Tables struct {
	Hubs           []Hub     `yaml:"hubs" validate:"required,min=1,dive"`
	RemoteKeywords []string  `yaml:"remote_keywords" validate:"required,min=1"`
	Countries      []Country `yaml:"countries" validate:"required,min=1,dive"`
}

// Score values per hub tier.
const (
	ScoreMajorHub     = 10
	ScoreSecondaryHub = 7
	ScoreNoHub        = 0
)

var (
	suffixRe    = regexp.MustCompile(`,?\s*(area|region)$`)
	separatorRe = regexp.MustCompile(`[·•]`)
)

// Classifier answers hub, remote, and country questions about raw
// location strings. Matching is by substring containment, which trades
// precision for recall on scraped input.
type Classifier struct {
	tables Tables
}

// NewClassifier builds a Classifier from explicit table data.
func NewClassifier(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

// Normalize lowercases, trims, and strips trailing "area"/"region"
// suffixes. Empty input yields the empty string.
func (c *Classifier) Normalize(location string) string {
	if location == "" {
		return ""
	}
	normalized := strings.ToLower(strings.TrimSpace(location))
	return suffixRe.ReplaceAllString(normalized, "")
}

// IdentifyHub returns the name of the first hub whose variant appears in
// the normalized location, or "" when none match.
func (c *Classifier) IdentifyHub(location string) string {
	if location == "" {
		return ""
	}
	normalized := c.Normalize(location)
	for _, hub := range c.tables.Hubs {
		for _, variant := range hub.Variants {
			if strings.Contains(normalized, variant) {
				return hub.Name
			}
		}
	}
	return ""
}

// Score rates a location by hub proximity: 10 for a major hub, 7 for a
// secondary hub, 0 otherwise.
func (c *Classifier) Score(location string) int {
	hub := c.IdentifyHub(location)
	if hub == "" {
		return ScoreNoHub
	}
	for _, h := range c.tables.Hubs {
		if h.Name == hub {
			if h.Major {
				return ScoreMajorHub
			}
			return ScoreSecondaryHub
		}
	}
	return ScoreNoHub
}

// Split is the result of separating a combined profile location string.
type Split struct {
	PersonLocation string
	CompanyHQ      string
}

// SplitCombined separates a scraped "Person Location · Company HQ"
// string on its middle-dot or bullet separator. Without a separator the
// whole string is the person's location.
func (c *Classifier) SplitCombined(raw string) Split {
	if separatorRe.MatchString(raw) {
		parts := separatorRe.Split(raw, -1)
		split := Split{PersonLocation: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			split.CompanyHQ = strings.TrimSpace(parts[1])
		}
		return split
	}
	return Split{PersonLocation: strings.TrimSpace(raw)}
}

// IsRemote reports whether the location indicates remote work.
func (c *Classifier) IsRemote(location string) bool {
	normalized := c.Normalize(location)
	for _, keyword := range c.tables.RemoteKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// ExtractCountry returns the canonical country name for the first alias
// found in the normalized location, or "" when none match.
func (c *Classifier) ExtractCountry(location string) string {
	normalized := c.Normalize(location)
	for _, country := range c.tables.Countries {
		for _, alias := range country.Aliases {
			if strings.Contains(normalized, alias) {
				return country.Name
			}
		}
	}
	return ""
}
