package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantFromWire(t *testing.T) {
	a := ApplicantFromWire(map[string]any{
		"surname":     "Dela Cruz",
		"first_name":  "Juan",
		"dateOfBirth": " 1990-05-14 ",
		"is_ofw":      "true",
		// legacy exports double-encode list sections
		"workExperience": `[{"company":"Acme"}]`,
		"otherSkills":    []any{"welding", "driving"},
		"education":      "not json at all",
	})

	assert.Equal(t, "Dela Cruz", a.Surname)
	assert.Equal(t, "Juan", a.FirstName)
	assert.Equal(t, "1990-05-14", a.DateOfBirth)
	assert.True(t, a.IsOFW)
	assert.JSONEq(t, `[{"company":"Acme"}]`, string(a.WorkExperience))
	assert.JSONEq(t, `["welding","driving"]`, string(a.OtherSkills))
	assert.Nil(t, a.Education)
}

func TestApplicantFromWireSpellingDrift(t *testing.T) {
	for _, key := range []string{"isOfw", "isOFW", "is_ofw"} {
		a := ApplicantFromWire(map[string]any{key: true})
		assert.True(t, a.IsOFW, key)
	}
	assert.False(t, ApplicantFromWire(map[string]any{}).IsOFW)
}

func TestEmployerFromWire(t *testing.T) {
	e := EmployerFromWire(map[string]any{
		"establishment_name":       "GenSan Tuna Packers",
		"account_status":           " Active ",
		"srs_subscriber":           true,
		"contactPerson":            map[string]any{"name": "Ana Lim", "designation": "HR Officer"},
		"requirements":             map[string]any{"permit": map[string]any{"submitted": true}},
		"additionalEstablishments": []any{"Polomolok Branch", 42},
	})

	assert.Equal(t, "GenSan Tuna Packers", e.EstablishmentName)
	assert.Equal(t, "active", e.AccountStatus)
	assert.True(t, e.SRSSubscriber)
	assert.Equal(t, "Ana Lim", e.ContactPerson.Data().Name)
	assert.Equal(t, "HR Officer", e.ContactPerson.Data().Position)
	assert.JSONEq(t, `{"permit":{"submitted":true}}`, string(e.Requirements))
	require.Len(t, e.AdditionalEstablishments, 1)
	assert.Equal(t, "Polomolok Branch", e.AdditionalEstablishments[0])
}

func TestEmployerFromWireDefaultsStatus(t *testing.T) {
	e := EmployerFromWire(map[string]any{"establishmentName": "X"})
	assert.Equal(t, EmployerStatusPending, e.AccountStatus)
}
