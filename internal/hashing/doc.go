// Package hashing derives the login hash for the gateway authentication
// handshake.
//
// The gateway never receives the plaintext password: the login endpoint
// issues a salt, and the client submits the SHA-512 digest of the password
// concatenated with that salt. This package holds that derivation and is the
// only place in the application where cryptography is used.
//
// # Example Usage
//
//	challenge, _ := client.FetchChallenge()
//	hash := hashing.PasswordDigest(password, challenge.PasswordSalt)
//	// hash is 128 lowercase hex characters, ready for the login POST
package hashing
