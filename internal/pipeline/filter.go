package pipeline

import (
	"strings"

	"github.com/euprime/leadrank/internal/lead"
)

// FilterOptions narrows a processed collection. Zero values disable the
// corresponding filter.
type FilterOptions struct {
	MinScore  int
	Locations []string
	Companies []string
	Hubs      []string
	Query     string
}

// Filter returns the leads matching every active option, preserving
// order. Callers re-rank the result: rank stays dense over whatever
// subset is visible.
func Filter(leads []lead.Lead, opts FilterOptions) []lead.Lead {
	locations := toSet(opts.Locations)
	companies := toSet(opts.Companies)
	hubs := toSet(opts.Hubs)
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	filtered := make([]lead.Lead, 0, len(leads))
	for _, l := range leads {
		if l.ScoreTotal < opts.MinScore {
			continue
		}
		if len(locations) > 0 && !locations[l.PersonLocation] {
			continue
		}
		if len(companies) > 0 && !companies[l.Company] {
			continue
		}
		if len(hubs) > 0 && !hubs[l.BiotechHub] {
			continue
		}
		if query != "" && !matchesQuery(&l, query) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

func matchesQuery(l *lead.Lead, query string) bool {
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.Company), query)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
