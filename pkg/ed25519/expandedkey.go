package ed25519

import "filippo.io/edwards25519"

// ExpandedPrivateKey is the signing form of an Ed25519 private key: the
// secret scalar s, the 32-byte nonce prefix, and the cached public key
// A = [s]B.
//
// The public key is computed inside PrivateKey.Expand and cannot be
// supplied by a caller. Pairing a foreign public key with a signing
// scalar is exploitable (two signatures over one message under different
// public keys recover s), so no such API exists.
//
// An ExpandedPrivateKey is immutable and safe for concurrent use. The
// scalar and prefix each live in their own allocation and are never
// aliased by anything Sign returns.
type ExpandedPrivateKey struct {
	s      *edwards25519.Scalar
	prefix [32]byte
	public *PublicKey
}

// PublicKey returns the public key computed during expansion.
func (key *ExpandedPrivateKey) PublicKey() *PublicKey {
	return key.public
}

// Sign signs a message with this expanded private key.
//
// Signing follows RFC 8032 section 5.1.6 with the empty domain separation
// string and identity prehash of PureEd25519:
//
//	r = SHA-512(prefix || message) mod L
//	R = [r]B
//	k = SHA-512(enc(R) || enc(A) || message) mod L
//	S = (r + k*s) mod L
//
// Signing is deterministic (the same seed and message always produce the
// same signature), cannot fail, and uses only constant-time scalar and
// fixed-base point operations. To sign a sub-range of a buffer, slice it:
// Sign(buf[off : off+n]).
func (key *ExpandedPrivateKey) Sign(message []byte) *Signature {
	r := nonceScalar(key.prefix[:], message)

	renc := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	k := challengeScalar(renc, key.public.enc[:], message)

	// S lands in a fresh scalar; neither r, k, nor s is reused as an
	// output buffer.
	S := edwards25519.NewScalar().MultiplyAdd(k, key.s, r)

	sig := &Signature{s: S}
	copy(sig.r[:], renc)
	return sig
}
