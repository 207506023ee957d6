package ed25519

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// SeedSize is the size, in bytes, of an Ed25519 private key seed.
const SeedSize = 32

// PrivateKey is an Ed25519 private key: a 32-byte seed.
//
// The seed is only ever used as an input to SHA-512, never as a scalar,
// so all 2^256 byte strings are valid private keys. A PrivateKey is
// immutable; the seed is copied on the way in and on the way out.
type PrivateKey struct {
	seed [SeedSize]byte
}

// GeneratePrivateKey creates a private key from a cryptographic random
// source. If random is nil, crypto/rand.Reader is used.
func GeneratePrivateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	var key PrivateKey
	if _, err := io.ReadFull(random, key.seed[:]); err != nil {
		return nil, fmt.Errorf("failed to read random seed: %w", err)
	}
	return &key, nil
}

// PrivateKeyFromBytes constructs a private key from a 32-byte seed.
func PrivateKeyFromBytes(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, SeedSize, len(seed))
	}
	var key PrivateKey
	copy(key.seed[:], seed)
	return &key, nil
}

// Bytes returns a copy of the 32-byte seed.
func (key *PrivateKey) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, key.seed[:])
	return out
}

// Expand converts the private key into its expanded form, which is what
// actually creates signatures.
//
// Per RFC 8032 section 5.1.5, the seed is hashed with SHA-512; the low 32
// bytes are pruned (clear the lowest three bits and the highest bit, set
// the second-highest bit) and become the secret scalar s, the high 32
// bytes become the nonce prefix, and the public key A = [s]B is computed
// and cached alongside them.
//
// Expansion costs a SHA-512 and a fixed-base scalar multiplication;
// callers signing repeatedly should keep the expanded key around instead
// of calling Expand per message.
func (key *PrivateKey) Expand() *ExpandedPrivateKey {
	h := sha512.Sum512(key.seed[:])

	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic("ed25519: internal error: clamping a 32-byte scalar failed")
	}

	expanded := &ExpandedPrivateKey{s: s}
	copy(expanded.prefix[:], h[32:])

	A := new(edwards25519.Point).ScalarBaseMult(s)
	expanded.public = newPublicKey(A)

	return expanded
}
