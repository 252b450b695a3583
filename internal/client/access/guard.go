// Package access holds the portal's single authorization policy: which view
// a session may see, where it lands after login and which navigation entries
// it is offered.
package access

import "github.com/nvpwelfare/portal/internal/client/models"

// Portal paths.
const (
	PathHome            = "/"
	PathAbout           = "/about"
	PathServices        = "/services"
	PathCampaigns       = "/campaigns"
	PathEvents          = "/events"
	PathContact         = "/contact"
	PathLogin           = "/login"
	PathRegister        = "/register"
	PathDonate          = "/donate"
	PathPending         = "/pending-approval"
	PathMemberDashboard = "/member-dashboard"
	PathAdminDashboard  = "/admin-dashboard"
)

// State is a snapshot of the session as seen by the guard.
type State struct {
	Principal *models.Principal
	Loading   bool
}

// Route describes a protected view.
type Route struct {
	Path         string
	RequireAdmin bool
}

type Outcome int

const (
	// Wait means the session is still resolving; show a neutral placeholder
	// and decide again later.
	Wait Outcome = iota
	Redirect
	Render
)

func (o Outcome) String() string {
	switch o {
	case Wait:
		return "wait"
	case Redirect:
		return "redirect"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict. Target is set only for Redirect.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Guard decides what a protected route shows for the given session state.
func Guard(s State, r Route) Decision {
	if s.Loading {
		return Decision{Outcome: Wait}
	}
	p := s.Principal
	if p == nil {
		return Decision{Outcome: Redirect, Target: PathLogin}
	}
	if p.IsPending() && r.Path != PathPending {
		return Decision{Outcome: Redirect, Target: PathPending}
	}
	if r.RequireAdmin && !p.IsAdmin() {
		return Decision{Outcome: Redirect, Target: PathMemberDashboard}
	}
	return Decision{Outcome: Render}
}

// LandingPath is where a principal goes after login or registration.
func LandingPath(p *models.Principal) string {
	switch {
	case p == nil:
		return PathLogin
	case p.IsAdmin():
		return PathAdminDashboard
	case p.Role == models.RoleMember && p.IsActive:
		return PathMemberDashboard
	default:
		return PathPending
	}
}
