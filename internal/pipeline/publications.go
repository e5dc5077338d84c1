package pipeline

import (
	"fmt"

	"github.com/euprime/leadrank/internal/lead"
)

// Synthetic publication used when a sparse legacy record carries only a
// DILI-paper flag and a count instead of a publication list.
const (
	syntheticTitle    = "DILI research"
	syntheticDate     = "2025-01-01"
	syntheticAbstract = "drug-induced liver injury 3D model"
)

// resolvePublications adapts a lead's publication data for the scorer.
// A proper publication list passes through untouched; a bare count plus
// the recent-DILI flag synthesizes stand-in publications so the scorer
// only ever sees a real list.
func resolvePublications(l *lead.Lead) ([]lead.Publication, error) {
	if len(l.Publications) > 0 {
		return l.Publications, nil
	}
	if !l.RecentDILIPaper {
		return nil, nil
	}

	count := l.PublicationCount
	if count < 0 {
		return nil, fmt.Errorf("negative publication count %d", count)
	}
	if count == 0 {
		count = 1
	}

	pubs := make([]lead.Publication, count)
	for i := range pubs {
		pubs[i] = lead.Publication{
			Title:    syntheticTitle,
			Date:     syntheticDate,
			Abstract: syntheticAbstract,
		}
	}
	return pubs, nil
}
