// Package ed25519 implements the Ed25519 signature scheme: PureEdDSA over
// the edwards25519 curve with SHA-512, as specified in RFC 8032.
//
// This package implements only the bare Ed25519 variant (empty domain
// separation string, identity prehash). The Ed25519ph and Ed25519ctx
// variants are not supported.
//
// Basic Usage:
//
//	priv, err := ed25519.GeneratePrivateKey(nil)
//	expanded := priv.Expand()
//	sig := expanded.Sign(message)
//	ok := expanded.PublicKey().Verify(message, sig)
//
// A private key is a 32-byte seed; it is never used as a scalar directly.
// Expand hashes and prunes the seed into the signing scalar, the nonce
// prefix, and the public key. Expansion costs a SHA-512 and a fixed-base
// scalar multiplication, so callers that sign more than once should retain
// the *ExpandedPrivateKey rather than re-expanding per signature.
//
// The public key used during signing is always the one computed inside
// Expand. There is deliberately no way to pair a different public key with
// a signing scalar: two signatures over the same message under mismatched
// public keys are enough to recover the secret scalar.
//
// Verification Policy:
//
// Verify checks the cofactorless group equation [S]B = R + [k]A and
// compares the recomputed R byte-for-byte against the signature. Decoding
// a signature rejects any S that is not a canonical scalar below the group
// order, so signatures accepted by this package are non-malleable. This is
// a strict verifier; ZIP-215 permissive validation is intentionally not
// offered.
package ed25519
