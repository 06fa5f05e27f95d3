package hashutil

import (
	"crypto/sha1"
	"encoding/hex"
)

// SHA1Hex returns the hex-encoded SHA-1 digest of s. This is the legacy,
// unsalted credential digest the stored user records were written with; it is
// kept for compatibility with existing data, not as a recommendation.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
