package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/treekeeper/internal/client/commands"
	"github.com/dmitrijs2005/treekeeper/internal/client/navigation"
	"github.com/dmitrijs2005/treekeeper/internal/common"
)

// getSimpleText, getPassword, getMultiline and getYesNo are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getYesNo      = GetYesNo
)

// SignUp prompts for the account details and creates the account. Only
// organizers are asked for a team name.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	organizer, err := getYesNo(a.reader, "Register as an organizer?", a.out)
	if err != nil {
		return err
	}

	var team string
	if organizer {
		if team, err = getSimpleText(a.reader, "Enter EcoTeam name (optional)", a.out); err != nil {
			return err
		}
	}

	return a.dispatcher.Dispatch(ctx, commands.SignUp{
		Organizer: organizer,
		Email:     email,
		Password:  string(password),
		TeamName:  team,
	})
}

// Login prompts the user for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.dispatcher.Dispatch(ctx, commands.Login{Email: email, Password: string(password)})
}

func (a *App) Logout(ctx context.Context) error {
	return a.dispatcher.Dispatch(ctx, commands.SignOut{})
}

func (a *App) Recover(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter the email of your account", a.out)
	if err != nil {
		return err
	}
	return a.dispatcher.Dispatch(ctx, commands.RecoverPassword{Email: email})
}

// Navigate switches to the named view. The guard decides where the user
// actually lands.
func (a *App) Navigate(ctx context.Context, name string) error {
	v, err := navigation.ParseView(name)
	if err != nil {
		printlnFn("Unknown view:", name)
		return err
	}
	return a.dispatcher.Dispatch(ctx, commands.Navigate{View: v})
}

// PlantTree prompts for a tree planting and logs it.
func (a *App) PlantTree(ctx context.Context) error {
	species, err := getSimpleText(a.reader, "Tree species", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Planting location", a.out)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "Photo file (optional)", a.out)
	if err != nil {
		return err
	}

	return a.dispatcher.Dispatch(ctx, commands.LogTree{Species: species, Location: location, Photo: photo})
}

// Report prompts for an environmental issue and logs it.
func (a *App) Report(ctx context.Context) error {
	location, err := getSimpleText(a.reader, "Nearest location", a.out)
	if err != nil {
		return err
	}
	summary, err := getSimpleText(a.reader, "Summary", a.out)
	if err != nil {
		return err
	}
	details, err := getMultiline(a.reader, "Details (optional)", a.out)
	if err != nil {
		return err
	}
	photo, err := getSimpleText(a.reader, "Photo file (optional)", a.out)
	if err != nil {
		return err
	}

	return a.dispatcher.Dispatch(ctx, commands.LogReport{
		Location: location,
		Summary:  summary,
		Details:  details,
		Photo:    photo,
	})
}

func (a *App) StartChallenge(ctx context.Context) error {
	return a.dispatcher.Dispatch(ctx, commands.StartChallenge{})
}

// JoinEvent joins a listed event, given by its number or title.
func (a *App) JoinEvent(ctx context.Context, ref string) error {
	title, ok := lookupEvent(ref)
	if !ok {
		printlnFn("Unknown event:", ref)
		return common.ErrNotFound
	}
	return a.dispatcher.Dispatch(ctx, commands.JoinEvent{Title: title})
}

func (a *App) SpeciesDetails(ctx context.Context, species string) error {
	return a.dispatcher.Dispatch(ctx, commands.SpeciesDetails{Species: species})
}

func (a *App) FilterMap(ctx context.Context) error {
	return a.dispatcher.Dispatch(ctx, commands.FilterMap{})
}

// lookupEvent resolves a 1-based index or a case-insensitive title.
func lookupEvent(ref string) (string, bool) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(events) {
			return "", false
		}
		return events[n-1].Title, true
	}
	for _, e := range events {
		if strings.EqualFold(e.Title, ref) {
			return e.Title, true
		}
	}
	return "", false
}
