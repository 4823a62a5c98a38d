// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the shared-secret primitives guarding administrative
// endpoints.
//
// # Architecture
//
// This package isolates security-sensitive comparisons from the domain logic.
// The seed gate depends on the [SecretMatcher] interface so that tests can
// inject fixed matchers.
package sec

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SecretMatcher reports whether a caller-supplied secret is acceptable.
type SecretMatcher interface {
	Match(supplied string) bool
}

// SharedSecret matches a caller-supplied secret against one configured value.
//
// The configured value is either the plain secret, compared in constant time,
// or a bcrypt hash of it (detected by the "$2a$", "$2b$" or "$2y$" prefix).
type SharedSecret struct {
	expected []byte
	hashed   bool
}

// NewSharedSecret builds a [SharedSecret] from the configured value.
// An empty configured value matches nothing.
func NewSharedSecret(configured string) *SharedSecret {
	return &SharedSecret{
		expected: []byte(configured),
		hashed:   isBcryptHash(configured),
	}
}

// Match implements [SecretMatcher].
func (s *SharedSecret) Match(supplied string) bool {
	if len(s.expected) == 0 || supplied == "" {
		return false
	}
	if s.hashed {
		return bcrypt.CompareHashAndPassword(s.expected, []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare(s.expected, []byte(supplied)) == 1
}

// HashSecret hashes a plain-text secret with bcrypt, for operators who prefer
// not to keep the plain value in the environment.
func HashSecret(plainTextSecret string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextSecret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash secret: %w", err)
	}
	return string(hashedBytes), nil
}

func isBcryptHash(value string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
