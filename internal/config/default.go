package config

import (
	"github.com/euprime/leadrank/internal/email"
	"github.com/euprime/leadrank/internal/location"
	"github.com/euprime/leadrank/internal/scoring"
)

// Default returns the reference configuration shipped with the tool.
// config/leadrank.yaml mirrors this data for file-based overrides.
func Default() *Config {
	return &Config{
		Scoring: scoring.Config{
			RoleFit: scoring.RoleFitConfig{
				HighValue: []string{
					"director", "head", "vp", "vice president", "chief",
					"toxicology", "safety", "preclinical",
				},
				MediumValue: []string{
					"manager", "lead", "senior", "principal",
					"hepatic", "liver", "dili", "3d",
				},
				LowValue: []string{"scientist", "researcher", "associate"},
			},
			Funding: scoring.FundingConfig{
				Rounds: []scoring.RoundScore{
					{Match: "series c", Score: 20},
					{Match: "series d", Score: 20},
					{Match: "series b", Score: 18},
					{Match: "series a", Score: 15},
					{Match: "seed", Score: 10},
					{Match: "ipo", Score: 20},
					{Match: "public", Score: 20},
				},
				DefaultScore: 5,
				RecencyDays:  365,
				RecencyBonus: 5,
			},
			Technographic: scoring.TechnographicConfig{
				Keywords: []string{
					"in vitro", "in-vitro", "3d model", "organoid", "spheroid",
					"organ-on-chip", "microphysiological", "cell culture",
					"drug discovery", "preclinical", "toxicology",
				},
			},
			Scientific: scoring.ScientificConfig{
				Keywords: []string{
					"dili", "drug-induced liver injury", "hepatotoxicity",
					"liver toxicity", "3d", "spheroid", "organoid",
					"in vitro", "hepatocyte", "liver model",
				},
				RecencyDays: 730,
			},
		},
		Locations: location.Tables{
			Hubs: []location.Hub{
				{
					Name:  "Boston/Cambridge",
					Major: true,
					Variants: []string{
						"boston", "cambridge, ma", "cambridge ma",
						"somerville", "brookline", "greater boston",
					},
				},
				{
					Name:  "San Francisco Bay Area",
					Major: true,
					Variants: []string{
						"san francisco", "south san francisco", "bay area",
						"san mateo", "palo alto", "menlo park", "redwood city",
						"oakland", "berkeley", "emeryville",
					},
				},
				{
					Name:     "San Diego",
					Variants: []string{"san diego", "la jolla", "sorrento valley"},
				},
				{
					Name:     "Basel",
					Major:    true,
					Variants: []string{"basel", "switzerland"},
				},
				{
					Name: "UK Golden Triangle",
					Variants: []string{
						"cambridge, uk", "cambridge uk", "oxford", "london",
						"stevenage", "harwell",
					},
				},
				{
					Name: "Research Triangle",
					Variants: []string{
						"research triangle", "durham", "raleigh", "chapel hill",
						"north carolina",
					},
				},
				{
					Name:     "New Jersey",
					Variants: []string{"new jersey", "princeton", "newark"},
				},
				{
					Name:     "Seattle",
					Variants: []string{"seattle", "bellevue", "bothell"},
				},
			},
			RemoteKeywords: []string{"remote", "work from home", "wfh", "distributed"},
			Countries: []location.Country{
				{Name: "United States", Aliases: []string{"usa", "united states", "u.s.", "us"}},
				{Name: "United Kingdom", Aliases: []string{"uk", "united kingdom", "england", "scotland", "wales"}},
				{Name: "Switzerland", Aliases: []string{"switzerland", "swiss"}},
				{Name: "Germany", Aliases: []string{"germany", "deutschland"}},
				{Name: "France", Aliases: []string{"france"}},
				{Name: "Netherlands", Aliases: []string{"netherlands", "holland"}},
				{Name: "Belgium", Aliases: []string{"belgium"}},
				{Name: "Canada", Aliases: []string{"canada"}},
				{Name: "China", Aliases: []string{"china", "prc"}},
				{Name: "Japan", Aliases: []string{"japan"}},
				{Name: "Singapore", Aliases: []string{"singapore"}},
			},
		},
		Email: email.Rules{
			Honorifics: []string{
				"Dr", "Prof", "Mr", "Mrs", "Ms", "PhD", "MD",
				"Jr", "Sr", "III", "II",
			},
			LegalSuffixes: []string{
				"inc", "llc", "ltd", "corp", "corporation", "company", "co",
			},
		},
	}
}
