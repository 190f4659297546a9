package navigation

import (
	"context"

	"github.com/dmitrijs2005/treekeeper/internal/logging"
)

// Renderer projects navigation state onto the UI.
type Renderer interface {
	ShowView(v View)
	HideAllViews()
	MarkCurrentNavItem(v View)
}

// Session is what the guard needs to know about the session.
type Session interface {
	IsAuthenticated() bool
}

// Guard activates views, redirecting to Login when a protected view is
// requested without a session. Exactly one view is visible at a time.
type Guard struct {
	session  Session
	renderer Renderer
	log      logging.Logger

	current View
}

func NewGuard(session Session, renderer Renderer, log logging.Logger) *Guard {
	return &Guard{session: session, renderer: renderer, log: log, current: Login}
}

// Navigate activates v if allowed, otherwise Login, and returns the view
// that became active. A redirect is logged, not reported as an error.
func (g *Guard) Navigate(ctx context.Context, v View) View {
	if !v.Public() && !g.session.IsAuthenticated() {
		g.log.Warn(ctx, "attempted to navigate to protected view without authentication", "view", v.String())
		v = Login
	}
	g.activate(v)
	return v
}

// Current returns the active view.
func (g *Guard) Current() View {
	return g.current
}

func (g *Guard) activate(v View) {
	g.renderer.HideAllViews()
	g.renderer.ShowView(v)
	g.renderer.MarkCurrentNavItem(v)
	g.current = v
}
