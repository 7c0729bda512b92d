package completeness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ta1kunjms/GensanWorks/internal/models"
)

func fullInput() Input {
	return Input{
		Surname:            "Dela Cruz",
		FirstName:          "Juan",
		DateOfBirth:        "1990-05-14",
		ContactNumber:      "09171234567",
		Email:              "juan@example.com",
		HouseStreetVillage: "123 Mabini St",
		Barangay:           "Lagao",

		Education:            []any{map[string]any{"level": "College"}},
		WorkExperience:       `[{"company":"Acme"}]`,
		OtherSkills:          []string{"welding"},
		PreferredOccupations: []byte(`["Welder","Driver"]`),
	}
}

func TestAsList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 0},
		{"native slice", []any{1, 2}, 2},
		{"string slice", []string{"a"}, 1},
		{"json string", `["a","b","c"]`, 3},
		{"json bytes", []byte(`[{}]`), 1},
		{"empty string", "", 0},
		{"invalid json", "{not json", 0},
		{"json but not array", `{"a":1}`, 0},
		{"number", 42, 0},
		{"empty array string", "[]", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, AsList(tt.in), tt.want)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	assert.Equal(t, 0, Score(Input{}))
	assert.Equal(t, 100, Score(fullInput()))

	// malformed list payloads must degrade, never throw
	in := fullInput()
	in.Education = "{{{"
	in.WorkExperience = 12.5
	got := Score(in)
	require.GreaterOrEqual(t, got, 0)
	require.LessOrEqual(t, got, 100)
	assert.Equal(t, 71, got) // 5 of 7, rounded
}

func TestScoreSingleCheck(t *testing.T) {
	// one satisfied check out of seven rounds to 14
	assert.Equal(t, 14, Score(Input{ContactNumber: "0917"}))
	// email alone also satisfies the contact check
	assert.Equal(t, 14, Score(Input{Email: "x@y.z"}))
	// identity needs all three parts
	assert.Equal(t, 0, Score(Input{Surname: "X", FirstName: "Y"}))
	// address needs both parts
	assert.Equal(t, 0, Score(Input{HouseStreetVillage: "1 A St"}))
}

func TestScoreMonotonic(t *testing.T) {
	in := Input{}
	prev := Score(in)

	steps := []func(*Input){
		func(i *Input) { i.Surname, i.FirstName, i.DateOfBirth = "A", "B", "1999-01-01" },
		func(i *Input) { i.Email = "a@b.c" },
		func(i *Input) { i.HouseStreetVillage, i.Barangay = "st", "brgy" },
		func(i *Input) { i.Education = `[{"level":"HS"}]` },
		func(i *Input) { i.WorkExperience = []any{1} },
		func(i *Input) { i.OtherSkills = []string{"x"} },
		func(i *Input) { i.PreferredOccupations = `["y"]` },
	}
	for _, step := range steps {
		step(&in)
		got := Score(in)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestEvaluateOrder(t *testing.T) {
	c := Evaluate(fullInput())
	assert.Equal(t, Checklist{true, true, true, true, true, true, true}, c)
	assert.Equal(t, 7, c.Satisfied())
}

func TestForApplicant(t *testing.T) {
	a := &models.Applicant{
		Surname:     "Reyes",
		FirstName:   "Maria",
		DateOfBirth: "1985-02-02",
		Email:       "maria@example.com",
		OtherSkills: []byte(`["baking"]`),
	}
	// identity + contact + skills = 3 of 7
	assert.Equal(t, 43, Score(ForApplicant(a)))
	assert.Equal(t, 0, Score(ForApplicant(nil)))
}
