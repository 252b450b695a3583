package access

import "github.com/nvpwelfare/portal/internal/client/models"

type NavItem struct {
	Label string
	Path  string
}

var publicNav = []NavItem{
	{Label: "Home", Path: PathHome},
	{Label: "About", Path: PathAbout},
	{Label: "Services", Path: PathServices},
	{Label: "Campaigns", Path: PathCampaigns},
	{Label: "Events", Path: PathEvents},
	{Label: "Contact", Path: PathContact},
}

// Navigation returns the menu for p. Pending principals get the approval
// status page in place of a dashboard.
func Navigation(p *models.Principal) []NavItem {
	items := make([]NavItem, 0, len(publicNav)+3)
	items = append(items, publicNav...)

	switch {
	case p == nil:
		items = append(items,
			NavItem{Label: "Login", Path: PathLogin},
			NavItem{Label: "Register", Path: PathRegister},
		)
	case p.IsPending():
		items = append(items, NavItem{Label: "Approval Status", Path: PathPending})
	default:
		items = append(items, NavItem{Label: "Dashboard", Path: LandingPath(p)})
	}

	return append(items, NavItem{Label: "Donate", Path: PathDonate})
}
