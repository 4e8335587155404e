package domain

// Role differentiates the two independent session kinds the gateway tracks.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// TokenKey returns the storage key holding the role's bearer token.
func (r Role) TokenKey() string {
	if r == RoleAdmin {
		return "adminToken"
	}
	return "authToken"
}

// ProfileKey returns the storage key holding the role's serialized profile.
func (r Role) ProfileKey() string {
	if r == RoleAdmin {
		return "adminUser"
	}
	return "user"
}

// Other returns the opposite role.
func (r Role) Other() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// Profile is the cached identity attached to a session.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// SessionState is a point-in-time view of both role sessions for one client.
// Both tokens may be present at once; the access guard resolves the conflict.
type SessionState struct {
	UserToken    string
	UserProfile  *Profile
	AdminToken   string
	AdminProfile *Profile
}

// HasUser reports whether a USER token is stored.
func (s SessionState) HasUser() bool { return s.UserToken != "" }

// HasAdmin reports whether an ADMIN token is stored.
func (s SessionState) HasAdmin() bool { return s.AdminToken != "" }
