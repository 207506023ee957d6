package ed25519

import (
	"fmt"

	"filippo.io/edwards25519"
)

// SignatureSize is the size, in bytes, of an encoded Ed25519 signature.
const SignatureSize = 64

// Signature is an Ed25519 signature: the encoded nonce point R and the
// scalar S.
//
// R is held as its raw 32-byte encoding and is not required to be a
// valid curve point; point validity surfaces as a false result from
// PublicKey.Verify. S is always a canonical scalar strictly below the
// group order, which makes stored signatures non-malleable. A Signature
// is immutable.
type Signature struct {
	r [32]byte
	s *edwards25519.Scalar
}

// SignatureFromBytes decodes a signature from its 64-byte R || S wire
// form.
//
// It returns ErrMalformedSignature if the input is not exactly 64 bytes
// or if the S half is not the canonical little-endian encoding of a
// scalar in [0, L). The R half is split off without validation, per
// RFC 8032 section 5.1.7 step 1; an R that is not a curve point makes
// verification fail, not decoding.
func SignatureFromBytes(input []byte) (*Signature, error) {
	if len(input) != SignatureSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, SignatureSize, len(input))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(input[32:])
	if err != nil {
		return nil, fmt.Errorf("%w: S is not a canonical scalar", ErrMalformedSignature)
	}
	sig := &Signature{s: s}
	copy(sig.r[:], input[:32])
	return sig, nil
}

// Bytes returns the 64-byte R || S encoding of the signature.
//
// S is encoded little-endian; because S is below the group order, the
// three most significant bits of the final byte are always zero.
func (sig *Signature) Bytes() []byte {
	out := make([]byte, SignatureSize)
	copy(out[:32], sig.r[:])
	copy(out[32:], sig.s.Bytes())
	return out
}

// Equal reports whether two signatures have the same R and S.
func (sig *Signature) Equal(other *Signature) bool {
	if other == nil {
		return false
	}
	return sig.r == other.r && sig.s.Equal(other.s) == 1
}
