// Package guard implements client-side route guards: pure decision
// functions that gate access to a view based on the current session.
//
// Guards are advisory. They keep the user out of views they cannot use
// productively; the backend re-enforces authorization on every request
// and remains the trust boundary.
package guard

import "github.com/moodify/moodctl/session"

// Target names a view a denied navigation is redirected to.
type Target string

const (
	// TargetLogin is the redirect for navigations with no usable session.
	TargetLogin Target = "login"
	// TargetHome is the redirect for authenticated but unauthorized
	// navigations. The user is known, merely not permitted.
	TargetHome Target = "home"
)

// Decision is the outcome of a guard: either the view may render, or the
// navigation is redirected to a target. There is no intermediate state.
type Decision struct {
	allowed  bool
	redirect Target
}

// Allowed reports whether the view may render.
func (d Decision) Allowed() bool {
	return d.allowed
}

// Redirect returns the redirect target for a denied decision. It is only
// meaningful when Allowed is false.
func (d Decision) Redirect() Target {
	return d.redirect
}

func allow() Decision {
	return Decision{allowed: true}
}

func redirectTo(t Target) Decision {
	return Decision{redirect: t}
}

// RequireAuthenticated gates views any logged-in user may see. An absent
// session or one without a token redirects to login.
func RequireAuthenticated(s session.Session, ok bool) Decision {
	if !ok || !s.Valid() {
		return redirectTo(TargetLogin)
	}
	return allow()
}

// RequireAdmin gates admin views. It applies the authenticated check
// first, then requires the admin role; a known but non-admin user is
// sent home rather than to login.
func RequireAdmin(s session.Session, ok bool) Decision {
	if d := RequireAuthenticated(s, ok); !d.Allowed() {
		return d
	}
	if !s.IsAdmin() {
		return redirectTo(TargetHome)
	}
	return allow()
}
