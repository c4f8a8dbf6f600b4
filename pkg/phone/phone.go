// Package phone validates internationally formatted phone numbers.
package phone

import "regexp"

// E.164: a plus sign, a non-zero leading digit, 7 to 15 digits total.
var e164 = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// IsValid reports whether number is a well-formed international phone
// number, e.g. +447123456789. It does not check carrier assignment.
func IsValid(number string) bool {
	return e164.MatchString(number)
}
