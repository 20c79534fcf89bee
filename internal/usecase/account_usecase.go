// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// TokenOutput returns the freshly issued access token.
type TokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp registers a new account and returns a token bound to its email.
	// Registering an already-taken email fails with a conflict.
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)

	// Login verifies credentials and returns a fresh token. A missing
	// account and a wrong password fail identically so callers cannot
	// enumerate registered emails.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
}
