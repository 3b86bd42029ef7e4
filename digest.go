package inputmask

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// digestLen is the number of hex characters kept from a value digest.
const digestLen = 16

// Digest returns a short, stable fingerprint of value.
//
// Signals carry digests instead of raw input so observers can correlate
// edits without seeing what was typed. The empty string has an empty digest.
func Digest(value string) string {
	if value == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:digestLen]
}
