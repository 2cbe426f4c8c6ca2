package auth

// Role is a capability marker attached to a user by the identity provider.
// Kept as a closed set of constants so permission checks can't drift into
// free-form string matching.
type Role string

const (
	// RoleAdmin grants elevated permissions on mutation operations
	// (currently: deleting any post)
	RoleAdmin Role = "admin"
)

// Viewer is the authenticated caller's identity, extracted from a bearer
// token or session cookie by the auth middleware. A nil *Viewer means
// the request is anonymous.
type Viewer struct {
	UserID string
	Roles  []Role
}

// HasRole reports whether the viewer holds the given role
func (v *Viewer) HasRole(role Role) bool {
	if v == nil {
		return false
	}
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the viewer holds the admin role
func (v *Viewer) IsAdmin() bool {
	return v.HasRole(RoleAdmin)
}
