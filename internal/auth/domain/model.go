package domain

import "time"

// Role scopes what a user can do in the portal.
type Role string

const (
	RoleStudent    Role = "student"
	RoleClub       Role = "club"
	RoleDepartment Role = "department"
)

// ValidRole reports whether r is a member of the role enumeration.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleClub, RoleDepartment:
		return true
	}
	return false
}

// User is an identity record. The same email may exist once per role;
// lookup is always by the (email, role) pair.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	UID       string    `json:"uid,omitempty"`     // students only
	ClubID    string    `json:"club_id,omitempty"` // club role only
	CreatedAt time.Time `json:"created_at"`
}

// StoredUser is the persisted form of a user, including the password
// hash. It never leaves the repository layer.
type StoredUser struct {
	User
	PasswordHash string `json:"password_hash"`
}

// Session is one live login. Sessions expire on their TTL or on
// explicit logout.
type Session struct {
	UserID    string    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignupRequest carries the fields of a new identity.
type SignupRequest struct {
	Email    string
	Password string
	Name     string
	Role     Role
	UID      string // students only
}
