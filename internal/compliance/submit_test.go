package compliance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAllSubmitted(t *testing.T) {
	raw := json.RawMessage(`{
		"permit":  {"required": true},
		"profile": {"required": false},
		"bir":     {"fileUrl": "https://x/bir.pdf"}
	}`)

	updated, ok := MarkAllSubmitted(raw)
	require.True(t, ok)

	entries := Build(Input{Requirements: updated})
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"permit", "profile", "bir"}, []string{entries[0].Key, entries[1].Key, entries[2].Key})

	assert.Equal(t, StatusSubmitted, entries[0].Status)
	// optional entries are left alone
	assert.Equal(t, StatusOptional, entries[1].Status)
	assert.False(t, entries[1].Submitted)
	// file URLs survive the rewrite
	assert.Equal(t, StatusSubmitted, entries[2].Status)
	assert.Equal(t, "https://x/bir.pdf", entries[2].FileURL)

	assert.Equal(t, 0, PendingCount(entries))
}

func TestMarkAllSubmittedNoChecklist(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`{}`), json.RawMessage(`"str"`), json.RawMessage(`{bad`)} {
		_, ok := MarkAllSubmitted(raw)
		assert.False(t, ok)
	}
}
