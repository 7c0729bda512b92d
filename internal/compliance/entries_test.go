package compliance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

func TestBuildStructured(t *testing.T) {
	in := Input{Requirements: json.RawMessage(`{
		"permit":  {"submitted": true,  "required": true},
		"profile": {"submitted": false, "required": false}
	}`)}

	entries := Build(in)
	require.Len(t, entries, 2)

	assert.Equal(t, "permit", entries[0].Key)
	assert.Equal(t, "permit", entries[0].Label)
	assert.Equal(t, StatusSubmitted, entries[0].Status)
	assert.True(t, entries[0].Submitted)
	assert.True(t, entries[0].Required)

	assert.Equal(t, "profile", entries[1].Label)
	assert.Equal(t, StatusOptional, entries[1].Status)
	assert.False(t, entries[1].Submitted)
	assert.False(t, entries[1].Required)

	assert.Equal(t, 0, PendingCount(entries))
}

func TestBuildStructuredPrecedence(t *testing.T) {
	// legacy fields present but the checklist wins, and they are never merged
	in := Input{
		Requirements:       json.RawMessage(`{"mayorsPermit": {"label": "Mayor's Permit"}}`),
		BusinessPermitFile: "https://files/permit.pdf",
		BIR2303File:        "https://files/bir.pdf",
	}
	entries := Build(in)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mayor's Permit", entries[0].Label)
	assert.Equal(t, StatusPending, entries[0].Status)
	assert.True(t, entries[0].Required) // default when not explicitly false
}

func TestBuildStructuredDetails(t *testing.T) {
	in := Input{Requirements: json.RawMessage(`{
		"business_permit_file": {"submitted": 1, "fileUrl": "https://x/a.pdf"},
		"doleCert":             {"submitted": "", "required": "false"},
		"sketchy":              "not an object"
	}`)}
	entries := Build(in)
	require.Len(t, entries, 3)

	assert.Equal(t, "business permit file", entries[0].Label)
	assert.True(t, entries[0].Submitted) // numeric 1 is truthy
	assert.Equal(t, "https://x/a.pdf", entries[0].FileURL)

	// required is only defeated by a literal boolean false
	assert.Equal(t, "dole Cert", entries[1].Label)
	assert.False(t, entries[1].Submitted)
	assert.True(t, entries[1].Required)
	assert.Equal(t, StatusPending, entries[1].Status)

	// non-object values still yield an entry with safe defaults
	assert.Equal(t, StatusPending, entries[2].Status)
	assert.False(t, entries[2].Submitted)
}

func TestBuildStructuredKeepsDocumentOrder(t *testing.T) {
	in := Input{Requirements: json.RawMessage(`{"z":{},"a":{},"m":{}}`)}
	entries := Build(in)
	require.Len(t, entries, 3)
	assert.Equal(t, "z", entries[0].Key)
	assert.Equal(t, "a", entries[1].Key)
	assert.Equal(t, "m", entries[2].Key)
}

func TestBuildLegacyEmpty(t *testing.T) {
	entries := Build(Input{})
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, StatusPending, e.Status)
		assert.False(t, e.Submitted)
		assert.True(t, e.Required)
		assert.Empty(t, e.FileURL)
	}
	assert.Equal(t, 4, PendingCount(entries))
	assert.Equal(t, "Business Permit", entries[0].Label)
	assert.Equal(t, "BIR Form 2303", entries[1].Label)
	assert.Equal(t, "Company Profile", entries[2].Label)
	assert.Equal(t, "DOLE Accreditation", entries[3].Label)
}

func TestBuildLegacySingleFile(t *testing.T) {
	entries := Build(Input{BusinessPermitFile: "https://x/a.pdf"})
	require.Len(t, entries, 4)

	assert.Equal(t, StatusSubmitted, entries[0].Status)
	assert.True(t, entries[0].Submitted)
	assert.Equal(t, "https://x/a.pdf", entries[0].FileURL)
	for _, e := range entries[1:] {
		assert.Equal(t, StatusPending, e.Status)
	}
	assert.Equal(t, 3, PendingCount(entries))
}

func TestLegacyFileURLShapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "https://x/a.pdf", "https://x/a.pdf"},
		{"object url", map[string]any{"url": "u"}, "u"},
		{"object path beats fileUrl", map[string]any{"fileUrl": "f", "path": "p"}, "p"},
		{"object file", map[string]any{"file": "f"}, "f"},
		{"raw json string", json.RawMessage(`"https://y/b.pdf"`), "https://y/b.pdf"},
		{"raw json object", json.RawMessage(`{"path":"stored/b.pdf"}`), "stored/b.pdf"},
		{"invalid json", json.RawMessage(`{oops`), ""},
		{"nil", nil, ""},
		{"number", 7, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, legacyFileURL(tt.in))
		})
	}
}

func TestPendingCountTracksSubmission(t *testing.T) {
	in := Input{Requirements: json.RawMessage(`{
		"a": {"required": true},
		"b": {"required": false}
	}`)}
	base := PendingCount(Build(in))
	assert.Equal(t, 1, base)

	// flipping a required entry to submitted drops the count by one
	in.Requirements = json.RawMessage(`{"a": {"required": true, "submitted": true}, "b": {"required": false}}`)
	assert.Equal(t, base-1, PendingCount(Build(in)))

	// flipping an optional entry changes nothing
	in.Requirements = json.RawMessage(`{"a": {"required": true}, "b": {"required": false, "submitted": true}}`)
	assert.Equal(t, base, PendingCount(Build(in)))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "business Permit File", Humanize("businessPermitFile"))
	assert.Equal(t, "business permit", Humanize("business_permit"))
	assert.Equal(t, "permit", Humanize("permit"))
	assert.Equal(t, "D O L E", Humanize("DOLE"))
}

func TestForEmployer(t *testing.T) {
	e := &models.Employer{Requirements: []byte(`{"permit": {"submitted": true}}`)}
	entries := Build(ForEmployer(e))
	require.Len(t, entries, 1)
	assert.Equal(t, StatusSubmitted, entries[0].Status)

	assert.Len(t, Build(ForEmployer(nil)), 4)
}
