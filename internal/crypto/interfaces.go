package crypto

// PasswordHasher turns account passwords into storable hashes. It knows
// nothing about accounts or storage.
//
//	hash := Hash(password)          // at account creation
//	ok   := Verify(password, hash)  // at POST /keys
type PasswordHasher interface {
	// Hash derives an Argon2id key from password and a fresh random salt and
	// encodes both with the cost parameters as one string.
	Hash(password string) (string, error)

	// Verify reports whether password matches an encoded hash. Malformed
	// hashes never match.
	Verify(password, encoded string) bool
}
