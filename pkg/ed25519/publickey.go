package ed25519

import (
	"bytes"
	"fmt"

	"filippo.io/edwards25519"
)

// PublicKeySize is the size, in bytes, of an encoded Ed25519 public key.
const PublicKeySize = 32

// PublicKey is an Ed25519 public key: a point A on the edwards25519
// curve together with its 32-byte compressed encoding.
//
// The decompressed point is cached at construction so that verification
// never pays decompression twice. A PublicKey is immutable and safe for
// concurrent use. Equality is defined on the encoding.
type PublicKey struct {
	point *edwards25519.Point
	enc   [PublicKeySize]byte
}

// newPublicKey wraps an already-validated curve point, caching its
// canonical compressed encoding.
func newPublicKey(point *edwards25519.Point) *PublicKey {
	pk := &PublicKey{point: point}
	copy(pk.enc[:], point.Bytes())
	return pk
}

// PublicKeyFromBytes decodes a public key from its compressed 32-byte
// form. It returns ErrInvalidPublicKey if the input is the wrong length
// or the y-coordinate has no matching x on the curve.
func PublicKeyFromBytes(input []byte) (*PublicKey, error) {
	if len(input) != PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(input))
	}
	point, err := new(edwards25519.Point).SetBytes(input)
	if err != nil {
		return nil, fmt.Errorf("%w: not a valid curve point", ErrInvalidPublicKey)
	}
	pk := &PublicKey{point: point}
	copy(pk.enc[:], input)
	return pk, nil
}

// Bytes returns a copy of the compressed 32-byte encoding.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, pk.enc[:])
	return out
}

// Verify reports whether sig is a valid signature over message by this
// public key.
//
// Per RFC 8032 section 5.1.7, the challenge k = SHA-512(enc(R) || enc(A)
// || message) mod L is recomputed and the group equation checked in its
// cofactorless form by recomputing R' = [S]B - [k]A and comparing its
// encoding byte-for-byte against the R carried in the signature. The
// double-scalar multiplication is variable-time; every input here is
// public.
//
// Verify never returns an error: any malformed or mismatching input,
// including an R that does not encode a curve point, reports false.
func (pk *PublicKey) Verify(message []byte, sig *Signature) bool {
	if sig == nil || sig.s == nil {
		return false
	}

	k := challengeScalar(sig.r[:], pk.enc[:], message)

	negA := new(edwards25519.Point).Negate(pk.point)
	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, negA, sig.s)

	return bytes.Equal(R.Bytes(), sig.r[:])
}

// Equal reports whether two public keys have the same encoding.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pk.enc == other.enc
}
