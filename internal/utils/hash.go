// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// shortIDLength is the number of hex characters kept by ShortID.
const shortIDLength = 8

// ShortID derives a stable identifier from s: the first 8 hex characters of
// its MD5 digest. Equal inputs always produce equal identifiers.
//
// Example usage:
//
//	id := utils.ShortID("alice") // "6384e2b2"
func ShortID(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:shortIDLength]
}

// SHA256Hex returns the unsalted hex-encoded SHA-256 digest of s.
//
// This is a demo-grade password digest, not a credential hashing scheme.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
