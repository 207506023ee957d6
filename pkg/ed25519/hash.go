package ed25519

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// The two hash compositions prescribed by RFC 8032 sections 5.1.6 and
// 5.1.7 live here so that the empty dom2 string and identity prehash of
// PureEd25519 cannot drift between signing and verification. Neither
// composition prepends anything to the hashed data.

// nonceScalar computes SHA-512(prefix || message) reduced into the scalar
// field. The result is the deterministic nonce r of RFC 8032 section
// 5.1.6 step 2.
func nonceScalar(prefix, message []byte) *edwards25519.Scalar {
	h := sha512.New()
	h.Write(prefix)
	h.Write(message)
	return reduceWide(h.Sum(nil))
}

// challengeScalar computes SHA-512(renc || aenc || message) reduced into
// the scalar field: the challenge k hashed over the encoded nonce point,
// the encoded public key, and the message (RFC 8032 sections 5.1.6 step 4
// and 5.1.7 step 2).
func challengeScalar(renc, aenc, message []byte) *edwards25519.Scalar {
	h := sha512.New()
	h.Write(renc)
	h.Write(aenc)
	h.Write(message)
	return reduceWide(h.Sum(nil))
}

// reduceWide interprets a 64-byte digest as a little-endian integer and
// reduces it modulo the group order.
func reduceWide(digest []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		// SetUniformBytes only fails on inputs that are not 64 bytes, and
		// every caller hands it a full SHA-512 digest.
		panic("ed25519: internal error: wide scalar reduction failed")
	}
	return s
}
