package hashing

import (
	"crypto/sha512"
	"encoding/hex"
)

// PasswordDigest calculates the SHA-512 digest of password concatenated with
// salt (no separator) and returns it as a lowercase hex string.
//
// The digest is deterministic and always 128 hex characters long. Any inputs
// are accepted, including an empty salt.
func PasswordDigest(password string, salt string) string {
	digest := sha512.Sum512([]byte(password + salt))
	return hex.EncodeToString(digest[:])
}
