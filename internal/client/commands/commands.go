// Package commands turns user actions into request values and dispatches
// them to the client services. The UI only builds requests; every outcome,
// success or failure, is reported through the notifier.
package commands

import "github.com/dmitrijs2005/treekeeper/internal/client/navigation"

// Command is a user action. The set is closed.
type Command interface {
	command()
}

// SignUp creates an account and signs it in.
type SignUp struct {
	Organizer bool
	Email     string
	Password  string
	TeamName  string
}

// Login signs in an existing account.
type Login struct {
	Email    string
	Password string
}

type SignOut struct{}

// Navigate requests a view change through the guard.
type Navigate struct {
	View navigation.View
}

// LogTree records a tree planting for the signed-in account. Photo is a
// path; only its base name is kept.
type LogTree struct {
	Species  string
	Location string
	Photo    string
}

// LogReport records an environmental issue for the signed-in account.
type LogReport struct {
	Location string
	Summary  string
	Details  string
	Photo    string
}

// RecoverPassword simulates a password reset email.
type RecoverPassword struct {
	Email string
}

// StartChallenge starts the weekly planting challenge.
type StartChallenge struct{}

// JoinEvent marks an event as attended for the signed-in account.
type JoinEvent struct {
	Title string
}

// SpeciesDetails asks for conservation information about a guide species.
type SpeciesDetails struct {
	Species string
}

// FilterMap is the map filter placeholder.
type FilterMap struct{}

func (SignUp) command()          {}
func (Login) command()           {}
func (SignOut) command()         {}
func (Navigate) command()        {}
func (LogTree) command()         {}
func (LogReport) command()       {}
func (RecoverPassword) command() {}
func (StartChallenge) command()  {}
func (JoinEvent) command()       {}
func (SpeciesDetails) command()  {}
func (FilterMap) command()       {}
