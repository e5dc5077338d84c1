// Package sample ships a demonstration lead set. It goes through the
// same input contract as any external feed.
package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/euprime/leadrank/internal/lead"
)

//go:embed leads.json
var leadsJSON []byte

// Leads decodes the embedded demonstration set.
func Leads() ([]lead.Lead, error) {
	var leads []lead.Lead
	if err := json.Unmarshal(leadsJSON, &leads); err != nil {
		return nil, fmt.Errorf("decode embedded sample leads: %w", err)
	}
	return leads, nil
}
