// Package navigation maps the client's views to their access level and
// refuses to enter protected views without an active session.
package navigation

import "fmt"

// View identifies a screen of the client.
type View int

const (
	Login View = iota
	Signup
	Dashboard
	Map
	Events
	Guide
	Profile

	viewCount
)

var viewNames = [viewCount]string{
	Login:     "login",
	Signup:    "signup",
	Dashboard: "dashboard",
	Map:       "map",
	Events:    "events",
	Guide:     "guide",
	Profile:   "profile",
}

// Views lists every view in menu order.
func Views() []View {
	vs := make([]View, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		vs = append(vs, v)
	}
	return vs
}

func (v View) String() string {
	if v < 0 || v >= viewCount {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Public reports whether v is reachable without a session.
func (v View) Public() bool {
	switch v {
	case Login, Signup:
		return true
	case Dashboard, Map, Events, Guide, Profile:
		return false
	default:
		return false
	}
}

// ParseView returns the view called name.
func ParseView(name string) (View, error) {
	for v, n := range viewNames {
		if n == name {
			return View(v), nil
		}
	}
	return 0, fmt.Errorf("unknown view %q", name)
}
