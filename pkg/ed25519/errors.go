package ed25519

import "errors"

var (
	// ErrInvalidSeed is returned when a private key is constructed from
	// anything other than 32 bytes.
	ErrInvalidSeed = errors.New("ed25519: invalid private key seed")

	// ErrInvalidPublicKey is returned when public key bytes are the wrong
	// length or do not encode a point on the curve.
	ErrInvalidPublicKey = errors.New("ed25519: invalid public key")

	// ErrMalformedSignature is returned when signature bytes are the wrong
	// length or carry a non-canonical S component.
	ErrMalformedSignature = errors.New("ed25519: malformed signature")
)
