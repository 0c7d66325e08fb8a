package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the service layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
