// Package verification derives the short codes used to prove phone
// number ownership. Codes are recomputed on demand from the number and
// a process-wide secret, so no code ever needs to be stored or expired.
// The secret must stay stable for the lifetime of issued codes.
package verification

import (
	"crypto/sha256"
	"encoding/hex"
)

// CodeLength is the number of characters in a verification code.
const CodeLength = 5

// Alphabet is the 32-symbol output alphabet: uppercase letters without
// the easily-confused I, then the digits 1-7.
const Alphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZ1234567"

// GenerateCode computes the deterministic verification code for a phone
// number. The sha256 digest of secret+number is taken as hex; the first
// two 5-character windows are added digit-wise, giving five values in
// [0, 30] that index into Alphabet.
//
// Collisions between distinct numbers are possible (~1/32^5 per pair)
// and acceptable for this use; the code is not a secret-resistant token.
func GenerateCode(phoneNumber, secret string) string {
	sum := sha256.Sum256([]byte(secret + phoneNumber))
	digest := hex.EncodeToString(sum[:])

	code := make([]byte, CodeLength)
	for i := 0; i < CodeLength; i++ {
		code[i] = Alphabet[hexDigit(digest[i])+hexDigit(digest[i+CodeLength])]
	}
	return string(code)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	default: // hex.EncodeToString emits lowercase a-f
		return int(c-'a') + 10
	}
}
