package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand" // secure random number generation
	"encoding/hex" // hex encoding for token identifiers
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT identity token along with its unique
// identifier and expiry.  The Token field contains the JWT string.  JTI is
// the token identifier written into the "jti" claim; logout revokes tokens
// by this identifier.  Exp stores the expiration timestamp as a time.Time.
// Tokens are sent in the Authorization header when calling protected
// endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	JTI   string    // unique token identifier (jti claim)
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role, and a TTL in minutes.  It
// returns an AccessToken structure containing the signed token, its unique
// identifier and its expiration time.  The JWT includes the claims: subject
// (sub), role, token id (jti), expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	// Calculate the expiration time by adding the TTL to the current UTC time.
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	// Every token carries a random identifier so that a single token can be
	// revoked on logout without invalidating the signing secret.
	jti, err := randomHex(16) // 16 bytes -> 32 hex chars
	if err != nil {
		return AccessToken{}, err
	}
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"jti":  jti,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, JTI: jti, Exp: exp}, nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.  It is used to produce token
// identifiers.  If the random number generator fails, an error is returned.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
