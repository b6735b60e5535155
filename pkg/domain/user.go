package domain

import (
	"strings"
	"time"
)

// UserID uniquely identifies a user within the system.
type UserID int64

// User is an account that can host listings, make bookings and write reviews.
type User struct {
	ID        UserID
	Username  string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// DisplayName returns the full name of the user, falling back to the username
// when no name is set.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}

	return u.Username
}
