package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Credential derives the stored credential value from a plaintext password
// and the server secret key: SHA-256 applied twice, hex-encoding the first
// round before hashing again. Deterministic, so the same call verifies
// credentials at login.
func Credential(password, secretKey string) string {
	first := sha256.Sum256([]byte(password + secretKey))
	second := sha256.Sum256([]byte(hex.EncodeToString(first[:])))
	return hex.EncodeToString(second[:])
}
