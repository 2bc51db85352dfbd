package model

import "time"

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column in the database. The json tags
// are omitted here because these structs are used by the repository layer;
// handlers define separate response types with appropriate JSON tags.
//
// A user either holds the admin flag, which grants pitch management and
// excludes bookings and ratings, or is a regular member who can book and
// rate pitches.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email (unique)
	PasswordHash string    // users.password_hash (bcrypt)
	IsAdmin      bool      // users.is_admin
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Role returns the role string encoded into identity tokens for this user.
func (u User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleMember
}

// Role names carried in the JWT "role" claim.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)
