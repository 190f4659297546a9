package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/treekeeper/internal/client/models"
	"github.com/dmitrijs2005/treekeeper/internal/client/navigation"
)

type event struct {
	Title    string
	When     string
	Location string
}

var events = []event{
	{Title: "Community Park Planting", When: "Saturday 08:00", Location: "Central Park"},
	{Title: "River Cleanup Drive", When: "Sunday 07:30", Location: "Riverside Trail"},
	{Title: "Urban Forest Workshop", When: "Wednesday 18:00", Location: "Public Library"},
}

var plantingSites = []string{
	"Central Park (north lawn)",
	"Riverside Trail",
	"School Road greenbelt",
}

var guideSpecies = []string{"Oak", "Maple", "Narra", "Mahogany"}

// consoleRenderer prints views to a terminal. A terminal cannot hide what it
// already printed, so hiding only forgets the visible view.
type consoleRenderer struct {
	w       io.Writer
	content func(navigation.View) []string
	visible navigation.View
	shown   bool
}

func (r *consoleRenderer) HideAllViews() {
	r.shown = false
}

func (r *consoleRenderer) ShowView(v navigation.View) {
	r.visible, r.shown = v, true
	fmt.Fprintf(r.w, "== %s ==\n", title(v))
	for _, line := range r.content(v) {
		fmt.Fprintln(r.w, line)
	}
}

// MarkCurrentNavItem prints the navigation bar with v bracketed. Public
// views have no bar.
func (r *consoleRenderer) MarkCurrentNavItem(v navigation.View) {
	if v.Public() {
		return
	}
	var items []string
	for _, n := range navigation.Views() {
		if n.Public() {
			continue
		}
		if n == v {
			items = append(items, "["+n.String()+"]")
		} else {
			items = append(items, n.String())
		}
	}
	fmt.Fprintln(r.w, strings.Join(items, "  "))
}

func title(v navigation.View) string {
	s := v.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// viewContent builds the body of a view from the current session.
func (a *App) viewContent(v navigation.View) []string {
	p := a.session.Profile()

	switch v {
	case navigation.Login:
		return []string{"Log in with 'login', create an account with 'signup', or 'recover' a password."}
	case navigation.Signup:
		return []string{"Create an account with 'signup'. Already registered? Use 'login'."}
	case navigation.Dashboard:
		lines := []string{
			fmt.Sprintf("Welcome back, %s!", p.DisplayName),
			fmt.Sprintf("Trees planted: %d  Points: %d  CO2 offset: %d kg",
				p.TreesLogged, p.PointsEarned, p.TreesLogged*models.CO2EstimatePerTree),
			`Current challenge: Plant 1 Tree This Week ('challenge' to start)`,
			"Log a planting with 'plant', report an issue with 'report'.",
		}
		return lines
	case navigation.Map:
		lines := []string{"Planting sites:"}
		for _, s := range plantingSites {
			lines = append(lines, "  - "+s)
		}
		return append(lines, "Use 'filter' to filter the map.")
	case navigation.Events:
		lines := make([]string, 0, len(events))
		for i, e := range events {
			status := "join " + fmt.Sprint(i+1)
			if a.dispatcher.Attending(e.Title) {
				status = "Attending"
			}
			lines = append(lines, fmt.Sprintf("%d. %s, %s at %s [%s]", i+1, e.Title, e.When, e.Location, status))
		}
		return lines
	case navigation.Guide:
		lines := []string{"Species guide:"}
		for _, s := range guideSpecies {
			lines = append(lines, "  - "+s)
		}
		return append(lines, "Use 'species <name>' for details.")
	case navigation.Profile:
		return a.profileContent()
	default:
		return nil
	}
}

func (a *App) profileContent() []string {
	ctx := context.Background()
	p := a.session.Profile()

	role := "Volunteer"
	if p.Role == models.RoleOrganizer {
		role = "Organizer"
	}
	lines := []string{
		"Name:   " + p.DisplayName,
		"Role:   " + role,
	}
	if p.EcoTeam != "" {
		lines = append(lines, "Team:   "+p.EcoTeam)
	}
	lines = append(lines,
		"ID:     "+p.AccountID,
		fmt.Sprintf("Trees:  %d", p.TreesLogged),
		fmt.Sprintf("Points: %d", p.PointsEarned),
	)

	logs, err := a.activity.TreeLogs(ctx, p.AccountID)
	if err != nil {
		a.log.Error(ctx, "failed to load tree logs", "error", err)
	}
	lines = append(lines, fmt.Sprintf("Tree logs (%d):", len(logs)))
	for _, e := range logs {
		lines = append(lines, fmt.Sprintf("  %s  %s at %s (%s)",
			e.Timestamp.Format("2006-01-02"), e.Species, e.Location, e.PhotoLabel))
	}

	reports, err := a.activity.Reports(ctx, p.AccountID)
	if err != nil {
		a.log.Error(ctx, "failed to load reports", "error", err)
	}
	lines = append(lines, fmt.Sprintf("Reports (%d):", len(reports)))
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("  %s  %s at %s [%s]",
			r.Timestamp.Format("2006-01-02"), r.Summary, r.Location, r.Status))
	}
	return lines
}
