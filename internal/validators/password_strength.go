// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "unicode/utf16"

// PasswordStrength is the verdict of [EvaluatePasswordStrength].
type PasswordStrength string

const (
	Strong PasswordStrength = "strong"
	Weak   PasswordStrength = "weak"
)

const (
	strongMinLength = 16
	mediumMinLength = 8
	mediumMaxLength = 11
)

// passwordTraits are the individual properties a password is graded on.
type passwordTraits struct {
	length       int
	hasUpper     bool
	hasLower     bool
	hasDigit     bool
	hasSymbol    bool
	mediumLength bool
	strongLength bool
}

// EvaluatePasswordStrength classifies a master password.
//
// A password is Strong when it is at least 16 UTF-16 code units long and has
// an ASCII upper-case letter, an ASCII lower-case letter, an ASCII digit and
// at least one character outside [A-Za-z0-9_]. Everything else, including the
// empty string, is Weak.
func EvaluatePasswordStrength(password string) PasswordStrength {
	if inspectPassword(password).strong() {
		return Strong
	}
	return Weak
}

func inspectPassword(password string) passwordTraits {
	var t passwordTraits
	for _, r := range password {
		t.length += utf16.RuneLen(r)

		switch {
		case r >= 'A' && r <= 'Z':
			t.hasUpper = true
		case r >= 'a' && r <= 'z':
			t.hasLower = true
		case r >= '0' && r <= '9':
			t.hasDigit = true
		case r == '_':
		default:
			t.hasSymbol = true
		}
	}

	// mediumLength does not take part in the verdict.
	t.mediumLength = t.length >= mediumMinLength && t.length <= mediumMaxLength
	t.strongLength = t.length >= strongMinLength

	return t
}

func (t passwordTraits) strong() bool {
	return t.strongLength && t.hasUpper && t.hasLower && t.hasDigit && t.hasSymbol
}
