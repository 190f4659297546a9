// Package models defines the records TreeKeeper keeps in its local store.
package models

import "strings"

// Role is fixed at sign-up.
type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleOrganizer Role = "organizer"
)

// Account is a persisted identity with credentials, role and progress
// aggregates. Accounts are never deleted.
type Account struct {
	ID    string `json:"userId"`
	Email string `json:"email"`
	// Password is stored and compared verbatim. This is a local simulation,
	// not a credential store.
	Password    string  `json:"password"`
	Role        Role    `json:"role"`
	DisplayName string  `json:"displayName"`
	EcoTeam     *string `json:"ecoTeam,omitempty"`

	TreesLogged  int `json:"treesLogged"`
	PointsEarned int `json:"pointsEarned"`
}

// DisplayNameFromEmail returns the local part of email (text before the
// first '@'), or the whole string when there is no '@'.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Team returns the eco team name or "" when none is set.
func (a *Account) Team() string {
	if a.EcoTeam == nil {
		return ""
	}
	return *a.EcoTeam
}
