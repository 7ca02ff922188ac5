package model

// Role values used by the backend and mirrored in the session record.
// Any role other than RoleAdmin is treated as a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the authenticated identity record persisted by the session
// store after a successful login. It mirrors exactly the fields the
// backend returns from POST /login; absence of a record means the
// client is unauthenticated. Possession of the record is treated as
// proof of authentication; the backend is never re-consulted.
//
// Fields:
//  ID    – backend user id.
//  Email – login email.
//  Role  – "user" or "admin"; selects the initial view at startup.
//  Name  – display name (backend full_name).
type User struct {
	ID    uint64 `json:"id"`    // backend user id
	Email string `json:"email"` // login email
	Role  string `json:"role"`  // user | admin
	Name  string `json:"name"`  // display name
}

// IsAdmin reports whether the record carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Profile holds the read-only profile fields served by GET /user/:id.
// The gateway never writes any of these; they populate the profile tab.
type Profile struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CNIC      string `json:"cnic"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"` // backend-formatted, passed through verbatim
}
