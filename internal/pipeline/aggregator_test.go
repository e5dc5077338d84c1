package pipeline_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euprime/leadrank/internal/config"
	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/pipeline"
)

var testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newAggregator() *pipeline.Aggregator {
	agg := pipeline.New(config.Default(), zerolog.Nop())
	agg.Scorer().Now = func() time.Time { return testNow }
	return agg
}

func TestDedupe(t *testing.T) {
	agg := newAggregator()

	leads := []lead.Lead{
		{Name: "Jane Smith", Company: "BioTech Inc"},
		{Name: "John Doe", Company: "Small Lab"},
		{Name: "  jane smith ", Company: "BIOTECH INC"}, // duplicate, case/space-insensitive
		{Name: "Jane Smith", Company: "Other Corp"},     // same person, different company
		{Name: "", Company: "Nameless Co"},              // unkeyable
		{Name: "Ghost", Company: ""},                    // unkeyable
	}

	unique := agg.Dedupe(leads)
	require.Len(t, unique, 3)
	assert.Equal(t, "Jane Smith", unique[0].Name)
	assert.Equal(t, "BioTech Inc", unique[0].Company)
	assert.Equal(t, "John Doe", unique[1].Name)
	assert.Equal(t, "Other Corp", unique[2].Company)
}

func TestDedupe_Idempotent(t *testing.T) {
	agg := newAggregator()

	leads := []lead.Lead{
		{Name: "Jane Smith", Company: "BioTech Inc"},
		{Name: "jane smith", Company: "biotech inc"},
		{Name: "John Doe", Company: "Small Lab"},
	}

	once := agg.Dedupe(leads)
	twice := agg.Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestEnrich(t *testing.T) {
	agg := newAggregator()

	l := lead.Lead{
		Name:     "Jane Smith",
		Company:  "BioTech Inc",
		Location: "Remote · Cambridge, MA",
	}
	require.NoError(t, agg.Enrich(&l))

	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "Remote", l.PersonLocation)
	assert.Equal(t, "Cambridge, MA", l.CompanyHQ)
	assert.Equal(t, "jane.smith@biotech.com", l.Email)
	assert.Equal(t, "Boston/Cambridge", l.BiotechHub)
}

func TestEnrich_PreservesExplicitFields(t *testing.T) {
	agg := newAggregator()

	l := lead.Lead{
		Name:           "Jane Smith",
		Company:        "BioTech Inc",
		PersonLocation: "Austin, TX",
		Location:       "Remote · Cambridge, MA",
		Email:          "jane@existing.com",
	}
	require.NoError(t, agg.Enrich(&l))

	// Explicit person location blocks the split; the raw string is left
	// alone and no HQ is invented.
	assert.Equal(t, "Austin, TX", l.PersonLocation)
	assert.Empty(t, l.CompanyHQ)
	assert.Equal(t, "jane@existing.com", l.Email)
	assert.Empty(t, l.BiotechHub)
}

func TestEnrich_CustomEmailDomain(t *testing.T) {
	agg := newAggregator()

	l := lead.Lead{Name: "Dr. Jane Smith", Company: "Pfizer Inc", EmailDomain: "pfizer.com"}
	require.NoError(t, agg.Enrich(&l))
	assert.Equal(t, "jane.smith@pfizer.com", l.Email)
}

func TestProcess_EndToEnd(t *testing.T) {
	agg := newAggregator()

	within1y := testNow.AddDate(0, 0, -90).Format("2006-01-02")
	within2y := testNow.AddDate(0, 0, -300).Format("2006-01-02")

	leads := []lead.Lead{
		{
			Name:               "Dr. Jane Smith",
			Title:              "Director of Toxicology",
			Company:            "BioTech Inc",
			Location:           "Cambridge, MA",
			CompanyDescription: "Drug discovery with 3D in vitro models and organ-on-chip platforms",
			FundingRound:       "Series B",
			FundingDate:        within1y,
			Publications: []lead.Publication{{
				Title:    "Novel 3D hepatic spheroid models for DILI prediction",
				Date:     within2y,
				Abstract: "drug-induced liver injury",
			}},
		},
		{
			Name:               "John Doe",
			Title:              "Research Assistant",
			Company:            "Small Lab",
			Location:           "Austin, TX",
			CompanyDescription: "General biology research",
		},
	}

	result := agg.Process(leads)
	require.Len(t, result.Leads, 2)
	assert.Empty(t, result.Dropped)

	first, second := result.Leads[0], result.Leads[1]
	assert.Equal(t, "Dr. Jane Smith", first.Name)
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, 2, second.Rank)
	assert.Greater(t, first.ScoreTotal, second.ScoreTotal)
	assert.Zero(t, second.ScoreTotal)
}

func TestProcess_ScoreBoundsAndRankDensity(t *testing.T) {
	agg := newAggregator()

	leads := []lead.Lead{
		{Name: "A", Company: "X", Title: "Director of Toxicology"},
		{Name: "B", Company: "X", Title: "Senior Manager"},
		{Name: "C", Company: "X"},
		{Name: "D", Company: "X", Title: "Chief Safety Officer", PersonLocation: "Boston, MA"},
	}

	result := agg.Process(leads)
	require.Len(t, result.Leads, 4)

	for i, l := range result.Leads {
		assert.Equal(t, i+1, l.Rank)
		assert.GreaterOrEqual(t, l.ScoreRoleFit, 0)
		assert.LessOrEqual(t, l.ScoreRoleFit, 30)
		assert.LessOrEqual(t, l.ScoreCompanyIntent, 20)
		assert.LessOrEqual(t, l.ScoreTechnographic, 15)
		assert.LessOrEqual(t, l.ScoreLocation, 10)
		assert.LessOrEqual(t, l.ScoreScientificIntent, 40)
		assert.GreaterOrEqual(t, l.ScoreTotal, 0)
		assert.LessOrEqual(t, l.ScoreTotal, 100)
		if i > 0 {
			assert.LessOrEqual(t, l.ScoreTotal, result.Leads[i-1].ScoreTotal)
		}
	}
}

func TestProcess_StableOnTies(t *testing.T) {
	agg := newAggregator()

	// Identical inputs score identically; post-dedup order must hold.
	leads := []lead.Lead{
		{Name: "First", Company: "X", Title: "Lab Manager"},
		{Name: "Second", Company: "X", Title: "Lab Manager"},
		{Name: "Third", Company: "X", Title: "Lab Manager"},
	}

	result := agg.Process(leads)
	require.Len(t, result.Leads, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{result.Leads[0].Name, result.Leads[1].Name, result.Leads[2].Name})
}

func TestProcess_DropsFailingLeadAndContinues(t *testing.T) {
	agg := newAggregator()

	leads := []lead.Lead{
		{Name: "Good", Company: "X", Title: "Director of Toxicology"},
		{Name: "Bad", Company: "Y", RecentDILIPaper: true, PublicationCount: -2},
		{Name: "Also Good", Company: "Z"},
	}

	result := agg.Process(leads)
	require.Len(t, result.Leads, 2)
	require.Len(t, result.Dropped, 1)
	assert.Equal(t, "Bad", result.Dropped[0].Name)
	assert.Contains(t, result.Dropped[0].Reason, "publication count")

	// Ranks stay dense over the survivors.
	assert.Equal(t, 1, result.Leads[0].Rank)
	assert.Equal(t, 2, result.Leads[1].Rank)
}

func TestProcess_EmptyInput(t *testing.T) {
	agg := newAggregator()

	result := agg.Process(nil)
	assert.Empty(t, result.Leads)
	assert.Empty(t, result.Dropped)
}

func TestFallbackPublicationSynthesis(t *testing.T) {
	agg := newAggregator()

	flagged := lead.Lead{
		Name:             "Flagged",
		Company:          "X",
		RecentDILIPaper:  true,
		PublicationCount: 2,
	}
	require.NoError(t, agg.Score(&flagged))

	// Equivalent to two synthetic DILI publications dated 2025-01-01.
	explicit := lead.Lead{
		Name:    "Explicit",
		Company: "X",
		Publications: []lead.Publication{
			{Title: "DILI research", Date: "2025-01-01", Abstract: "drug-induced liver injury 3D model"},
			{Title: "DILI research", Date: "2025-01-01", Abstract: "drug-induced liver injury 3D model"},
		},
	}
	require.NoError(t, agg.Score(&explicit))

	assert.NotZero(t, flagged.ScoreScientificIntent)
	assert.Equal(t, explicit.ScoreScientificIntent, flagged.ScoreScientificIntent)
}

func TestFallback_FlagWithoutCount(t *testing.T) {
	agg := newAggregator()

	l := lead.Lead{Name: "Flagged", Company: "X", RecentDILIPaper: true}
	require.NoError(t, agg.Score(&l))
	// A bare flag counts as one synthetic publication.
	assert.NotZero(t, l.ScoreScientificIntent)
}

func TestFallback_NoFlagNoPublications(t *testing.T) {
	agg := newAggregator()

	l := lead.Lead{Name: "Plain", Company: "X", PublicationCount: 3}
	require.NoError(t, agg.Score(&l))
	assert.Zero(t, l.ScoreScientificIntent)
}
