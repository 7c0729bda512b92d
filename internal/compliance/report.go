package compliance

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

// The compliance report predates this service and downstream spreadsheets
// depend on its exact shape: every field is double-quoted, embedded quotes
// are doubled. encoding/csv quotes only when it must, so the rows are written
// by hand.

const reportHeader = "Employer,Requirement,Status,Required,Submitted,File URL\n"

// WriteReport emits the fixed header, then one quoted row per employer
// requirement entry.
func WriteReport(w io.Writer, employers []*models.Employer) error {
	if _, err := io.WriteString(w, reportHeader); err != nil {
		return err
	}
	for _, e := range employers {
		name := e.EstablishmentName
		if name == "" {
			name = e.TradeName
		}
		for _, entry := range Build(ForEmployer(e)) {
			row := []string{
				name,
				entry.Label,
				string(entry.Status),
				fmt.Sprintf("%t", entry.Required),
				fmt.Sprintf("%t", entry.Submitted),
				entry.FileURL,
			}
			if err := writeRow(w, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}

// ReportFileName names the download after the filtered row count.
func ReportFileName(records int) string {
	return fmt.Sprintf("employer-compliance-%d-records.csv", records)
}
