// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified claim set of a bearer token.
//
// RegisteredClaims carries the standard "sub", "exp" and "iat" claims.
// Extra holds any other caller-supplied claims found in the token.
type Claims struct {
	jwt.RegisteredClaims

	// Extra contains non-registered claims keyed by claim name.
	Extra map[string]any `json:"-"`
}

// Token is a freshly issued bearer token.
type Token struct {
	// Token is the underlying JWT used for signing.
	// Only the compact form is meaningful outside the process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
