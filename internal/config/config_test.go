package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_ReferenceTables(t *testing.T) {
	cfg := Default()

	assert.Len(t, cfg.Locations.Hubs, 8)
	assert.Equal(t, "Boston/Cambridge", cfg.Locations.Hubs[0].Name)
	assert.True(t, cfg.Locations.Hubs[0].Major)

	majors := 0
	for _, hub := range cfg.Locations.Hubs {
		if hub.Major {
			majors++
		}
	}
	assert.Equal(t, 3, majors)

	assert.Equal(t, 365, cfg.Scoring.Funding.RecencyDays)
	assert.Equal(t, 730, cfg.Scoring.Scientific.RecencyDays)
}

func TestLoad_ReferenceFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "leadrank.yaml"))
	require.NoError(t, err)

	// The shipped file mirrors the built-in defaults.
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_MissingRequiredKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	// No role_fit tiers, no hubs: must fail validation, not limp along.
	content := []byte(`
scoring:
  funding:
    rounds: [{match: seed, score: 10}]
    recency_days: 365
locations:
  remote_keywords: [remote]
email:
  honorifics: [Dr]
  legal_suffixes: [inc]
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
