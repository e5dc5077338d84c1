package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeads(t *testing.T) {
	leads, err := Leads()
	require.NoError(t, err)
	require.Len(t, leads, 20)

	for _, l := range leads {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Company)
	}

	// Legacy count-style publications decode into the count field.
	assert.Equal(t, 2, leads[0].PublicationCount)
	assert.True(t, leads[0].RecentDILIPaper)
	assert.Empty(t, leads[0].Publications)
}
