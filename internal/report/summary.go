// Package report computes batch-level summary metrics over a processed
// lead collection. Rendering stays with external consumers.
package report

import (
	"sort"

	"github.com/euprime/leadrank/internal/lead"
)

// Leads scoring at or above this are counted as high quality.
const highQualityScore = 80

// CriterionAverages holds the mean of each sub-score across the batch.
type CriterionAverages struct {
	RoleFit          float64 `json:"role_fit"`
	CompanyIntent    float64 `json:"company_intent"`
	Technographic    float64 `json:"technographic"`
	Location         float64 `json:"location"`
	ScientificIntent float64 `json:"scientific_intent"`
}

// CompanyCount pairs a company with how many of its leads survived.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Summary is the batch overview: totals, averages, and distributions.
type Summary struct {
	TotalLeads   int               `json:"total_leads"`
	AverageScore float64           `json:"average_score"`
	HighQuality  int               `json:"high_quality"`
	HubCounts    map[string]int    `json:"hub_counts,omitempty"`
	Averages     CriterionAverages `json:"criterion_averages"`
	TopCompanies []CompanyCount    `json:"top_companies,omitempty"`
}

// Summarize computes the summary for a processed collection. An empty
// collection yields a zero summary.
func Summarize(leads []lead.Lead) Summary {
	s := Summary{TotalLeads: len(leads)}
	if len(leads) == 0 {
		return s
	}

	hubCounts := make(map[string]int)
	companyCounts := make(map[string]int)
	var totalSum, roleSum, intentSum, techSum, locSum, sciSum int

	for i := range leads {
		l := &leads[i]
		totalSum += l.ScoreTotal
		roleSum += l.ScoreRoleFit
		intentSum += l.ScoreCompanyIntent
		techSum += l.ScoreTechnographic
		locSum += l.ScoreLocation
		sciSum += l.ScoreScientificIntent

		if l.ScoreTotal >= highQualityScore {
			s.HighQuality++
		}
		if l.BiotechHub != "" {
			hubCounts[l.BiotechHub]++
		}
		if l.Company != "" {
			companyCounts[l.Company]++
		}
	}

	n := float64(len(leads))
	s.AverageScore = float64(totalSum) / n
	s.Averages = CriterionAverages{
		RoleFit:          float64(roleSum) / n,
		CompanyIntent:    float64(intentSum) / n,
		Technographic:    float64(techSum) / n,
		Location:         float64(locSum) / n,
		ScientificIntent: float64(sciSum) / n,
	}
	if len(hubCounts) > 0 {
		s.HubCounts = hubCounts
	}
	s.TopCompanies = topCompanies(companyCounts, 10)
	return s
}

func topCompanies(counts map[string]int, limit int) []CompanyCount {
	ranked := make([]CompanyCount, 0, len(counts))
	for company, count := range counts {
		ranked = append(ranked, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Company < ranked[j].Company
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
