package compliance

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

func TestWriteReportQuoting(t *testing.T) {
	e := &models.Employer{
		EstablishmentName: `Tuna "Prime", Inc.`,
		Requirements:      []byte(`{"permit": {"label": "Mayor's Permit, 2025 \"renewal\"", "submitted": true, "fileUrl": "https://x/a.pdf"}}`),
	}

	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, []*models.Employer{e}))
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Employer,Requirement,Status,Required,Submitted,File URL", lines[0])
	assert.Equal(t, `"Tuna ""Prime"", Inc.","Mayor's Permit, 2025 ""renewal""","Submitted","true","true","https://x/a.pdf"`, lines[1])

	// round-trips through a standard CSV reader
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Tuna "Prime", Inc.`, records[1][0])
	assert.Equal(t, `Mayor's Permit, 2025 "renewal"`, records[1][1])
}

func TestWriteReportLegacyRows(t *testing.T) {
	e := &models.Employer{TradeName: "Kalye Kainan"}

	var sb strings.Builder
	require.NoError(t, WriteReport(&sb, []*models.Employer{e}))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 5) // header + four legacy requirements
	assert.Contains(t, lines[1], `"Kalye Kainan","Business Permit","Pending","true","false",""`)
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "employer-compliance-0-records.csv", ReportFileName(0))
	assert.Equal(t, "employer-compliance-42-records.csv", ReportFileName(42))
}
