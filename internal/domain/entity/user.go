// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity entity of the system. It is created once at
// signup and never mutated or deleted through this surface.
type User struct {
	ID           int64     // Storage-generated numeric identifier.
	Email        string    // Unique login identifier; also the subject claim of issued tokens.
	PasswordHash string    // bcrypt digest of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
