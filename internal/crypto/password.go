// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const hashPrefix = "argon2id"

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
		saltLen:      16,
	}
}

// Hash implements [PasswordHasher]. The result has the form
// argon2id$t=1,m=65536,p=4$<salt>$<key> with raw base64 salt and key.
func (p *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	return strings.Join([]string{
		hashPrefix,
		fmt.Sprintf("t=%d,m=%d,p=%d", p.argonTime, p.argonMemory, p.argonThreads),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	}, "$"), nil
}

// Verify implements [PasswordHasher]. The cost parameters stored in encoded
// win over the receiver's, so hashes survive a parameter change.
func (p *passwordHasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != hashPrefix {
		return false
	}

	var (
		t, m    uint32
		threads uint8
	)
	if _, err := fmt.Sscanf(parts[1], "t=%d,m=%d,p=%d", &t, &m, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, t, m, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
