package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euprime/leadrank/internal/lead"
	"github.com/euprime/leadrank/internal/pipeline"
)

func rankedFixture() []lead.Lead {
	leads := []lead.Lead{
		{Name: "Ava", Company: "Vertex", PersonLocation: "Boston, MA", BiotechHub: "Boston/Cambridge", ScoreTotal: 90},
		{Name: "Ben", Company: "Roche", PersonLocation: "Basel, Switzerland", BiotechHub: "Basel", ScoreTotal: 75},
		{Name: "Cam", Company: "Vertex", PersonLocation: "Austin, TX", ScoreTotal: 40},
		{Name: "Dee", Company: "Small Lab", PersonLocation: "Austin, TX", ScoreTotal: 10},
	}
	pipeline.Rank(leads)
	return leads
}

func TestFilter_MinScore(t *testing.T) {
	filtered := pipeline.Filter(rankedFixture(), pipeline.FilterOptions{MinScore: 50})
	require.Len(t, filtered, 2)
	assert.Equal(t, "Ava", filtered[0].Name)
	assert.Equal(t, "Ben", filtered[1].Name)
}

func TestFilter_ByCompanyAndHub(t *testing.T) {
	filtered := pipeline.Filter(rankedFixture(), pipeline.FilterOptions{Companies: []string{"Vertex"}})
	require.Len(t, filtered, 2)

	filtered = pipeline.Filter(rankedFixture(), pipeline.FilterOptions{Hubs: []string{"Basel"}})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ben", filtered[0].Name)
}

func TestFilter_Query(t *testing.T) {
	filtered := pipeline.Filter(rankedFixture(), pipeline.FilterOptions{Query: "small"})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Dee", filtered[0].Name)
}

// After narrowing, re-ranking keeps ranks dense over the visible subset.
func TestFilter_ThenReRank(t *testing.T) {
	filtered := pipeline.Filter(rankedFixture(), pipeline.FilterOptions{MinScore: 30})
	pipeline.Rank(filtered)

	require.Len(t, filtered, 3)
	for i, l := range filtered {
		assert.Equal(t, i+1, l.Rank)
	}
}

func TestFilter_NoOptionsKeepsAll(t *testing.T) {
	all := rankedFixture()
	assert.Len(t, pipeline.Filter(all, pipeline.FilterOptions{}), len(all))
}
