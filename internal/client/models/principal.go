package models

import "github.com/nvpwelfare/portal/internal/timex"

// Role is the authorization role attached to a principal.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// NormalizeRole maps any backend role other than admin to member. Rejected
// applicants come back as "public" and must stay gated.
func NormalizeRole(r string) Role {
	if Role(r) == RoleAdmin {
		return RoleAdmin
	}
	return RoleMember
}

// Principal is the authenticated user as seen by the client.
type Principal struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      Role            `json:"role"`
	IsActive  bool            `json:"is_active"`
	CreatedAt timex.Timestamp `json:"created_at"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsPending reports whether the principal is a member awaiting approval.
func (p Principal) IsPending() bool {
	return p.Role == RoleMember && !p.IsActive
}

// RegisterRequest is the self-registration payload. It has no role field:
// the backend always creates members.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token     string
	Principal Principal
}
