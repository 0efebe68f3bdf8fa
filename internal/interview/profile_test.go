package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		Name:             "Arpit Patel",
		Email:            "arpit@example.com",
		Phone:            "+91 9876543210",
		YearsExperience:  0.5,
		DesiredPositions: "Software Engineer",
		Location:         "Bangalore, India",
		Technologies:     []string{"Python"},
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		ok     bool
	}{
		{name: "valid", mutate: func(*Profile) {}, ok: true},
		{name: "missing name", mutate: func(p *Profile) { p.Name = "  " }},
		{name: "email without at", mutate: func(p *Profile) { p.Email = "arpit.example.com" }},
		{name: "email without dot", mutate: func(p *Profile) { p.Email = "arpit@example" }},
		{name: "short phone", mutate: func(p *Profile) { p.Phone = "+1 234-567" }},
		{name: "negative years", mutate: func(p *Profile) { p.YearsExperience = -1 }},
		{name: "no technologies", mutate: func(p *Profile) { p.Technologies = nil }},
		{name: "blank technology", mutate: func(p *Profile) { p.Technologies = []string{"Go", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestProfileNormalizeKeepsOrderAndDuplicates(t *testing.T) {
	p := Profile{Name: " Ada ", Technologies: []string{" Go", "", "React ", "Go"}}.Normalize()

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, []string{"Go", "React", "Go"}, p.Technologies)
}

func TestProfileFromMap(t *testing.T) {
	p, err := ProfileFromMap(map[string]any{
		"name":              "Grace Hopper",
		"email":             "grace@example.com",
		"phone":             "+1 555 0100 200",
		"years-experience":  "2.5",
		"desired-positions": "Backend Engineer",
		"location":          "Arlington",
		"technologies":      "COBOL, Go ,,SQL",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", p.Name)
	assert.InDelta(t, 2.5, p.YearsExperience, 1e-9)
	assert.Equal(t, []string{"COBOL", "Go", "SQL"}, p.Technologies)
	assert.NoError(t, p.Validate())

	p, err = ProfileFromMap(map[string]any{"technologies": []any{"Go", "Rust"}, "years-experience": 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, p.Technologies)
	assert.InDelta(t, 4.0, p.YearsExperience, 1e-9)
}

func TestValidateTechnologies(t *testing.T) {
	assert.NoError(t, ValidateTechnologies("Go, React"))
	assert.ErrorIs(t, ValidateTechnologies(" , "), ErrInvalidProfile)
}
