package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity a token asserts. The subject is the
// user's email; expiry and issuance come from jwt.RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and decoding signed
// identity tokens. Tokens are the sole authorization credential: there
// is no session table and no revocation, so a token stays usable until
// its expiry regardless of account state.
type TokenService interface {
	// Issue signs a token for the given subject with the configured
	// default time-to-live.
	Issue(subject string) (string, error)

	// IssueWithTTL signs a token whose expiry is now+ttl. The ttl is
	// taken as given, so a zero or negative ttl produces a token that
	// is already expired.
	IssueWithTTL(subject string, ttl time.Duration) (string, error)

	// Decode verifies signature and expiry and returns the claim set.
	// Malformed, tampered or expired tokens yield an error, never a
	// panic; callers must treat any error as an invalid credential.
	Decode(token string) (*Claims, error)
}
