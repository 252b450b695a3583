package access

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/nvpwelfare/portal/internal/client/models"
)

func principal(role models.Role, active bool) *models.Principal {
	return &models.Principal{ID: "u1", Name: "N", Email: "n@x", Role: role, IsActive: active}
}

func TestGuard(t *testing.T) {
	admin := principal(models.RoleAdmin, true)
	member := principal(models.RoleMember, true)
	pending := principal(models.RoleMember, false)

	tests := []struct {
		name  string
		state State
		route Route
		want  Decision
	}{
		{"loading never redirects", State{Loading: true}, Route{Path: PathAdminDashboard, RequireAdmin: true}, Decision{Outcome: Wait}},
		{"loading with principal", State{Loading: true, Principal: member}, Route{Path: PathMemberDashboard}, Decision{Outcome: Wait}},
		{"anonymous", State{}, Route{Path: PathMemberDashboard}, Decision{Outcome: Redirect, Target: PathLogin}},
		{"pending on dashboard", State{Principal: pending}, Route{Path: PathMemberDashboard}, Decision{Outcome: Redirect, Target: PathPending}},
		{"pending on pending page", State{Principal: pending}, Route{Path: PathPending}, Decision{Outcome: Render}},
		{"member on admin route", State{Principal: member}, Route{Path: PathAdminDashboard, RequireAdmin: true}, Decision{Outcome: Redirect, Target: PathMemberDashboard}},
		{"member on member route", State{Principal: member}, Route{Path: PathMemberDashboard}, Decision{Outcome: Render}},
		{"admin on admin route", State{Principal: admin}, Route{Path: PathAdminDashboard, RequireAdmin: true}, Decision{Outcome: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.state, tt.route))
		})
	}
}

func TestLandingPath(t *testing.T) {
	assert.Equal(t, PathLogin, LandingPath(nil))
	assert.Equal(t, PathAdminDashboard, LandingPath(principal(models.RoleAdmin, true)))
	assert.Equal(t, PathMemberDashboard, LandingPath(principal(models.RoleMember, true)))
	assert.Equal(t, PathPending, LandingPath(principal(models.RoleMember, false)))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "redirect", Redirect.String())
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

var routePaths = []string{
	PathHome, PathMemberDashboard, PathAdminDashboard, PathDonate, "/anything",
}

func genPath(paths []string) gopter.Gen {
	return gen.IntRange(0, len(paths)-1).Map(func(i int) string { return paths[i] })
}

func genRoute() gopter.Gen {
	return gopter.CombineGens(
		genPath(routePaths),
		gen.Bool(),
	).Map(func(v []interface{}) Route {
		return Route{Path: v[0].(string), RequireAdmin: v[1].(bool)}
	})
}

func TestGuard_PendingAlwaysGated(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("pending member is sent to the approval page", prop.ForAll(
		func(r Route, id string) bool {
			p := &models.Principal{ID: id, Role: models.RoleMember, IsActive: false}
			d := Guard(State{Principal: p}, r)
			return d.Outcome == Redirect && d.Target == PathPending
		},
		genRoute(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestGuard_AdminContentNeverRenderedForNonAdmins(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("require-admin route never renders for members", prop.ForAll(
		func(path string, active bool) bool {
			p := &models.Principal{ID: "x", Role: models.RoleMember, IsActive: active}
			d := Guard(State{Principal: p}, Route{Path: path, RequireAdmin: true})
			return d.Outcome != Render
		},
		genPath([]string{PathAdminDashboard, PathPending, PathMemberDashboard, "/reports"}),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
