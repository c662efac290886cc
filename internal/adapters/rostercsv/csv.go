// Package rostercsv parses the collaborator-defined roster import format:
// ordered rows of (homeAddress, name, clientOfficeAddress?).
package rostercsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"office-commute-service/internal/domain"
)

// Parse reads roster rows into employees. The first row is a header and
// is skipped; blank lines are ignored; an empty name defaults to a
// positional placeholder. IDs are assigned sequentially and stay stable
// for the session.
func Parse(r io.Reader) ([]domain.Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse roster: read csv: %w", err)
	}

	employees := make([]domain.Employee, 0, len(records))
	id := 0
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}

		if blankRow(rec) {
			continue
		}

		home := strings.TrimSpace(field(rec, 0))
		if home == "" {
			return nil, fmt.Errorf("parse roster: row %d: home address is empty", i+1)
		}

		id++
		name := strings.TrimSpace(field(rec, 1))
		if name == "" {
			name = fmt.Sprintf("Employee %d", id)
		}

		employees = append(employees, domain.Employee{
			ID:                  id,
			Name:                name,
			HomeAddress:         home,
			ClientOfficeAddress: strings.TrimSpace(field(rec, 2)),
		})
	}

	return employees, nil
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

func blankRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
