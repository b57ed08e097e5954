// Package models defines the persisted record types shared by repositories
// and services on the server side.
package models

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash; the raw
// password is never stored or logged. Users are immutable after creation.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// PublicUser is the client-facing view of a User. It never carries the
// password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
