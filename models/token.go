package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the JWT claims issued and verified by the auth service.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (issuer,
// subject, expiry) and adds the account role so the admin gate can be enforced
// without a database round trip per request.
//
// SignedString holds the compact serialized form ready for the Authorization
// header; UserID is the parsed copy of the "sub" claim. Neither is part of the
// claim payload itself.
type Token struct {
	jwt.RegisteredClaims

	// Role is the account role claim ("admin" or "user").
	Role string `json:"role,omitempty"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// ParseUserID converts the "sub" claim into the numeric user ID and caches it
// on the token. It returns an error if the subject is absent or not numeric.
func (t *Token) ParseUserID() error {
	id, err := strconv.ParseInt(t.Subject, 10, 64)
	if err != nil {
		return err
	}
	t.UserID = id
	return nil
}
