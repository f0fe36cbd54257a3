package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used to authenticate the client against the privileged
// process.
//
// SignedString holds the compact form sent in the Authorization header.
// Subject is the parsed "sub" claim naming the calling component
// (e.g. "renderer").
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	Subject      string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
