package cryptofolio

import "strings"

// User is the authenticated identity as served by the backend. It is
// created at registration and immutable on this side of the wire.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName returns the user's display name, falling back to the email when
// both name parts are blank.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
