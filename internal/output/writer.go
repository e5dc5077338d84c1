// Package output renders processed leads as a row-oriented table with a
// stable column order for export and external rendering.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/euprime/leadrank/internal/lead"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatTSV, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want csv, tsv, or json)", s)
}

// Columns is the stable export column order.
var Columns = []string{
	"rank", "score_total", "name", "title", "company",
	"person_location", "company_hq", "email", "linkedin",
	"biotech_hub", "score_role_fit", "score_company_intent",
	"score_technographic", "score_location", "score_scientific_intent",
}

// Row renders one lead in column order.
func Row(l *lead.Lead) []string {
	return []string{
		strconv.Itoa(l.Rank),
		strconv.Itoa(l.ScoreTotal),
		l.Name,
		l.Title,
		l.Company,
		l.PersonLocation,
		l.CompanyHQ,
		l.Email,
		l.LinkedIn,
		l.BiotechHub,
		strconv.Itoa(l.ScoreRoleFit),
		strconv.Itoa(l.ScoreCompanyIntent),
		strconv.Itoa(l.ScoreTechnographic),
		strconv.Itoa(l.ScoreLocation),
		strconv.Itoa(l.ScoreScientificIntent),
	}
}

// Write encodes the leads in the requested format. CSV and TSV start
// with a header row; JSON is an indented array of full records.
func Write(w io.Writer, leads []lead.Lead, format Format) error {
	switch format {
	case FormatCSV:
		return writeDelimited(w, leads, ',')
	case FormatTSV:
		return writeDelimited(w, leads, '\t')
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(leads)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// WriteFile writes the encoded table to path.
func WriteFile(path string, leads []lead.Lead, format Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, leads, format); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeDelimited(w io.Writer, leads []lead.Lead, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range leads {
		if err := cw.Write(Row(&leads[i])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
