package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in every issued session token.
//
// It extends [jwt.RegisteredClaims] (iss, sub, iat, exp) with the identity
// attributes the client needs to render the signed-in user without an extra
// profile round trip. The subject claim carries the user ID.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the address the token was issued for.
	Email string `json:"email,omitempty"`

	// Name is the display name of the token's owner.
	Name string `json:"name,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
//
// UserID is a cached copy of the "sub" (subject) claim, populated during
// token construction or after a successful parse.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded session claim set (sub, email, name, iat, exp).
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
