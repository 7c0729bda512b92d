// Package compliance derives employer requirement checklists, roster counts
// and the admin compliance report. Two storage representations exist for
// requirements and exactly one is authoritative per record: the structured
// checklist object, or the four legacy file columns from the old SRS upload
// flow.
package compliance

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

type Status string

const (
	StatusSubmitted Status = "Submitted"
	StatusPending   Status = "Pending"
	StatusOptional  Status = "Optional"
)

// Entry is one requirement item as rendered by the admin UI. Never persisted;
// always rebuilt from the employer record.
type Entry struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Status    Status `json:"status"`
	FileURL   string `json:"fileUrl,omitempty"`
	Submitted bool   `json:"submitted"`
	Required  bool   `json:"required"`
}

// Input is the compliance-relevant slice of an employer record. Requirements
// holds the structured checklist as stored JSON; the legacy fields hold
// either a URL string or an object wrapping one.
type Input struct {
	Requirements json.RawMessage

	BusinessPermitFile    any
	BIR2303File           any
	CompanyProfileFile    any
	DOLECertificationFile any
}

// The legacy flow wrote exactly these four documents, always required, in
// this order.
var legacyFields = []struct {
	Key   string
	Label string
}{
	{"businessPermitFile", "Business Permit"},
	{"bir2303File", "BIR Form 2303"},
	{"companyProfileFile", "Company Profile"},
	{"doleCertificationFile", "DOLE Accreditation"},
}

// Build resolves the authoritative representation and returns the uniform
// entry list. A non-empty structured checklist wins; the legacy columns are
// then never inspected. With neither present the four legacy entries come
// back all Pending. Total: malformed input degrades, never errors.
func Build(in Input) []Entry {
	if entries := structuredEntries(in.Requirements); len(entries) > 0 {
		return entries
	}
	return legacyEntries(in)
}

func structuredEntries(raw json.RawMessage) []Entry {
	var entries []Entry
	for _, kv := range decodeOrdered(raw) {
		val, _ := kv.value.(map[string]any)

		label := ""
		if val != nil {
			if s, ok := val["label"].(string); ok && s != "" {
				label = s
			}
		}
		if label == "" {
			label = Humanize(kv.key)
		}

		submitted := val != nil && truthy(val["submitted"])

		required := true
		if val != nil {
			if b, ok := val["required"].(bool); ok && !b {
				required = false
			}
		}

		status := StatusOptional
		if submitted {
			status = StatusSubmitted
		} else if required {
			status = StatusPending
		}

		entries = append(entries, Entry{
			Key:       kv.key,
			Label:     label,
			Status:    status,
			FileURL:   fileURL(val, "fileUrl", "url", "file"),
			Submitted: submitted,
			Required:  required,
		})
	}
	return entries
}

func legacyEntries(in Input) []Entry {
	values := map[string]any{
		"businessPermitFile":    in.BusinessPermitFile,
		"bir2303File":           in.BIR2303File,
		"companyProfileFile":    in.CompanyProfileFile,
		"doleCertificationFile": in.DOLECertificationFile,
	}

	entries := make([]Entry, 0, len(legacyFields))
	for _, f := range legacyFields {
		url := legacyFileURL(values[f.Key])
		status := StatusPending
		if url != "" {
			status = StatusSubmitted
		}
		entries = append(entries, Entry{
			Key:       f.Key,
			Label:     f.Label,
			Status:    status,
			FileURL:   url,
			Submitted: url != "",
			Required:  true,
		})
	}
	return entries
}

// legacyFileURL resolves a legacy column value to a URL: a plain string is
// the URL itself, an object is probed at url/path/fileUrl/file in that order.
// Raw JSON (as loaded from the DB column) is decoded first.
func legacyFileURL(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.RawMessage:
		return legacyFileURL(decodeAny([]byte(t)))
	case []byte:
		return legacyFileURL(decodeAny(t))
	case map[string]any:
		return fileURL(t, "url", "path", "fileUrl", "file")
	default:
		return ""
	}
}

func decodeAny(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

func fileURL(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// truthy mirrors the loose submitted flag from the wire: nil, false, "" and 0
// are unset, anything else counts as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

var camelBoundary = regexp.MustCompile(`([A-Z])`)

// Humanize turns a requirement key into a display label the way the admin UI
// always has: a space before each capital, underscores to spaces, trimmed.
// "businessPermitFile" -> "business Permit File".
func Humanize(key string) string {
	s := camelBoundary.ReplaceAllString(key, " $1")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.TrimSpace(s)
}

// PendingCount is the number of required-but-unsubmitted entries. Always
// recomputed from a fresh entry list; requirement state changes between
// views.
func PendingCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if e.Required && !e.Submitted {
			n++
		}
	}
	return n
}

// ForEmployer adapts a stored employer row to builder input.
func ForEmployer(e *models.Employer) Input {
	if e == nil {
		return Input{}
	}
	return Input{
		Requirements:          json.RawMessage(e.Requirements),
		BusinessPermitFile:    json.RawMessage(e.BusinessPermitFile),
		BIR2303File:           json.RawMessage(e.BIR2303File),
		CompanyProfileFile:    json.RawMessage(e.CompanyProfileFile),
		DOLECertificationFile: json.RawMessage(e.DOLECertificationFile),
	}
}

type orderedKV struct {
	key   string
	value any
}

// decodeOrdered walks the stored requirements object with the token decoder
// so entries keep the document's key order; a Go map would scramble the order
// the admin UI expects. Anything that is not a JSON object yields nil.
func decodeOrdered(raw json.RawMessage) []orderedKV {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil
	}

	var out []orderedKV
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out
		}
		key, _ := keyTok.(string)

		var val any
		if err := dec.Decode(&val); err != nil {
			return out
		}
		out = append(out, orderedKV{key: key, value: val})
	}
	return out
}
