// Package completeness derives the applicant profile-completeness percentage
// shown on dashboards and used by admins to gauge registration quality. The
// score is recomputed on every read from a fixed seven-item checklist; it is
// never stored.
package completeness

import (
	"encoding/json"
	"math"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

// ChecklistSize is the number of profile sections that count toward the
// score.
const ChecklistSize = 7

// Input is the loose applicant view the scorer evaluates. List fields are
// typed any because stored rows predate the schema cleanup: a value may be a
// native array, a JSON-encoded string, raw JSON bytes, or absent entirely.
type Input struct {
	Surname            string
	FirstName          string
	DateOfBirth        string
	ContactNumber      string
	Email              string
	HouseStreetVillage string
	Barangay           string

	Education            any
	WorkExperience       any
	OtherSkills          any
	PreferredOccupations any
}

// Checklist reports which profile sections are filled in, in the fixed order
// the frontend renders them.
type Checklist struct {
	Identity             bool `json:"identity"`
	Contact              bool `json:"contact"`
	Address              bool `json:"address"`
	Education            bool `json:"education"`
	WorkExperience       bool `json:"workExperience"`
	OtherSkills          bool `json:"otherSkills"`
	PreferredOccupations bool `json:"preferredOccupations"`
}

// AsList coerces a stored list field to a slice. Already-decoded slices pass
// through; strings and raw JSON are parsed, with failures and non-array
// results treated as empty. Never panics, regardless of input.
func AsList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out
	case json.RawMessage:
		return parseList([]byte(t))
	case []byte:
		return parseList(t)
	case string:
		return parseList([]byte(t))
	default:
		return nil
	}
}

func parseList(b []byte) []any {
	if len(b) == 0 {
		return nil
	}
	var out []any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

// Evaluate runs the seven checks. Each check is independent; missing fields
// simply fail their check.
func Evaluate(in Input) Checklist {
	return Checklist{
		Identity:             in.Surname != "" && in.FirstName != "" && in.DateOfBirth != "",
		Contact:              in.ContactNumber != "" || in.Email != "",
		Address:              in.HouseStreetVillage != "" && in.Barangay != "",
		Education:            len(AsList(in.Education)) > 0,
		WorkExperience:       len(AsList(in.WorkExperience)) > 0,
		OtherSkills:          len(AsList(in.OtherSkills)) > 0,
		PreferredOccupations: len(AsList(in.PreferredOccupations)) > 0,
	}
}

func (c Checklist) Satisfied() int {
	n := 0
	for _, ok := range [ChecklistSize]bool{
		c.Identity, c.Contact, c.Address,
		c.Education, c.WorkExperience, c.OtherSkills, c.PreferredOccupations,
	} {
		if ok {
			n++
		}
	}
	return n
}

// Score returns the completeness percentage, rounded to the nearest integer.
// Always in [0,100].
func Score(in Input) int {
	return int(math.Round(100 * float64(Evaluate(in).Satisfied()) / ChecklistSize))
}

// ForApplicant adapts a stored applicant row to scorer input.
func ForApplicant(a *models.Applicant) Input {
	if a == nil {
		return Input{}
	}
	return Input{
		Surname:            a.Surname,
		FirstName:          a.FirstName,
		DateOfBirth:        a.DateOfBirth,
		ContactNumber:      a.ContactNumber,
		Email:              a.Email,
		HouseStreetVillage: a.HouseStreetVillage,
		Barangay:           a.Barangay,

		Education:            []byte(a.Education),
		WorkExperience:       []byte(a.WorkExperience),
		OtherSkills:          []byte(a.OtherSkills),
		PreferredOccupations: []byte(a.PreferredOccupations),
	}
}
