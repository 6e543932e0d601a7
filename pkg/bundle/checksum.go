package bundle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// ChecksumLength is the length of every digest this package produces.
const ChecksumLength = 64

// FailedChecksum is the sentinel digest attached to a bundle whose
// construction failed as a whole.
var FailedChecksum = strings.Repeat("0", ChecksumLength)

// Digest returns the lowercase hex SHA-256 of text encoded as UTF-8. It
// never fails: any panic in the primary path silently falls back to a
// non-cryptographic digest of the same shape.
func Digest(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackDigest(text)
		}
	}()
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// fallbackDigest computes a rolling 32-bit polynomial hash (multiply by 31,
// wrapping in the signed 32-bit range) and repeats its 8-character hex form
// to 64 characters. This is a display and filename convenience only, never
// an integrity guarantee.
func fallbackDigest(text string) string {
	var h int32
	for _, r := range text {
		h = h*31 + int32(r)
	}
	var abs uint32
	if h < 0 {
		abs = uint32(-int64(h))
	} else {
		abs = uint32(h)
	}
	part := fmt.Sprintf("%08x", abs)
	return strings.Repeat(part, 8)
}
