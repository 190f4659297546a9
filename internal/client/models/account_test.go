package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"organizer@example.com", "organizer"},
		{"a.b@c@d", "a.b"},
		{"no-at-sign", "no-at-sign"},
		{"@example.com", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayNameFromEmail(tt.email))
		})
	}
}

func TestAccount_EcoTeamOmittedWhenNil(t *testing.T) {
	a := Account{ID: "u1", Email: "v@example.com", Role: RoleVolunteer}

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "ecoTeam")
	assert.Equal(t, "", a.Team())

	team := "Greenies"
	a.EcoTeam = &team
	b, err = json.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"ecoTeam":"Greenies"`)
	assert.Equal(t, "Greenies", a.Team())
}

func TestPhotoLabel(t *testing.T) {
	assert.Equal(t, NoPhotoLabel, PhotoLabel(""))
	assert.Equal(t, NoPhotoLabel, PhotoLabel("   "))
	assert.Equal(t, "oak.jpg", PhotoLabel("/home/me/pictures/oak.jpg"))
	assert.Equal(t, "oak.jpg", PhotoLabel("oak.jpg"))
}
