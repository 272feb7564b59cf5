package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// Session is a logged-in operator. Credentials are never verified; the
// role is whatever was selected at login.
type Session struct {
	Token     string
	Username  string
	Role      Role
	LoginTime time.Time
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
