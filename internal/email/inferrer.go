// Package email infers likely business email addresses from a person's
// name and their company. This is pattern inference only: no DNS or SMTP
// verification is performed and results are never asserted deliverable.
package email

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rules configures name and company normalization. Honorifics are
// stripped from names as whole words, case-insensitively; legal suffixes
// are stripped from company names before deriving a domain.
type Rules struct {
	Honorifics    []string `yaml:"honorifics" validate:"required,min=1"`
	LegalSuffixes []string `yaml:"legal_suffixes" validate:"required,min=1"`
}

// NameParts is a normalized person name ready for local-part assembly.
type NameParts struct {
	First        string
	Last         string
	FirstInitial string
}

var (
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]`)
	emailFormat = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	asciiFold   = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Inferrer generates candidate addresses from a fixed ordered pattern
// list. The first pattern (first.last@domain) is the canonical most
// likely choice.
type Inferrer struct {
	rules         Rules
	honorificRe   *regexp.Regexp
	legalSuffixRe *regexp.Regexp
}

// NewInferrer builds an Inferrer from explicit rules.
func NewInferrer(rules Rules) *Inferrer {
	return &Inferrer{
		rules:         rules,
		honorificRe:   wordListRe(rules.Honorifics),
		legalSuffixRe: wordListRe(rules.LegalSuffixes),
	}
}

func wordListRe(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, `|`) + `)\b\.?`)
}

// NormalizeName strips honorific and suffix tokens and splits what
// remains into first/last parts. Single-token names yield an empty last
// name; an empty result yields all-empty parts.
func (inf *Inferrer) NormalizeName(fullName string) NameParts {
	cleaned := inf.honorificRe.ReplaceAllString(fullName, "")
	parts := strings.Fields(foldASCII(cleaned))

	switch len(parts) {
	case 0:
		return NameParts{}
	case 1:
		first := strings.ToLower(parts[0])
		return NameParts{First: first, FirstInitial: first[:1]}
	default:
		first := strings.ToLower(parts[0])
		last := strings.ToLower(parts[len(parts)-1])
		return NameParts{First: first, Last: last, FirstInitial: first[:1]}
	}
}

// DomainFromCompany derives the likely email domain from a company name:
// legal suffixes stripped, non-alphanumerics removed, ".com" appended.
func (inf *Inferrer) DomainFromCompany(company string) string {
	domain := strings.ToLower(foldASCII(company))
	domain = inf.legalSuffixRe.ReplaceAllString(domain, "")
	domain = nonAlnumRe.ReplaceAllString(domain, "")
	return domain + ".com"
}

// GenerateVariations returns candidate addresses in pattern order,
// against the custom domain when given, otherwise a domain derived from
// the company name. Candidates with an empty or separator-led local
// part, or a separator abutting the "@", are discarded.
func (inf *Inferrer) GenerateVariations(name, company, customDomain string) []string {
	parts := inf.NormalizeName(name)
	domain := customDomain
	if domain == "" {
		domain = inf.DomainFromCompany(company)
	}

	locals := []string{
		parts.First + "." + parts.Last,
		parts.First + parts.Last,
		parts.FirstInitial + parts.Last,
		parts.First + "_" + parts.Last,
		parts.Last + "." + parts.First,
		parts.FirstInitial + "." + parts.Last,
	}

	var variations []string
	for _, local := range locals {
		if !usableLocal(local) {
			continue
		}
		variations = append(variations, local+"@"+domain)
	}
	return variations
}

func usableLocal(local string) bool {
	if local == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasPrefix(local, "_") {
		return false
	}
	if strings.HasSuffix(local, ".") || strings.HasSuffix(local, "_") {
		return false
	}
	return true
}

// MostLikely returns the first generated variation, or "" when the name
// carries no usable tokens.
func (inf *Inferrer) MostLikely(name, company, customDomain string) string {
	variations := inf.GenerateVariations(name, company, customDomain)
	if len(variations) == 0 {
		return ""
	}
	return variations[0]
}

// ValidateFormat reports whether the address has a plausible shape.
func ValidateFormat(address string) bool {
	return emailFormat.MatchString(address)
}

// foldASCII strips diacritics so accented names produce clean ASCII
// local parts.
func foldASCII(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return folded
}
