package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// DigestParams are the Argon2id cost settings.
type DigestParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultDigestParams returns the production Argon2id cost settings.
func DefaultDigestParams() DigestParams {
	return DigestParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Digester turns submitted passwords into PHC-encoded Argon2id digests so the
// raw password never leaves the submission handler.
type Digester struct {
	params DigestParams
}

// NewDigester creates a Digester with the given parameters.
func NewDigester(params DigestParams) *Digester {
	return &Digester{params: params}
}

// Digest hashes password with a fresh random salt.
// Format: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
func (d *Digester) Digest(password string) (string, error) {
	p := d.params

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}
