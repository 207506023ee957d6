package ed25519

import (
	"bytes"
	"errors"
	"testing"
)

func TestPublicKeyFromBytesRejectsShortInput(t *testing.T) {
	_, err := PublicKeyFromBytes(hexToBytes("00"))
	if !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("Expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestPublicKeyFromBytesRejectsLongInput(t *testing.T) {
	_, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public + "00"))
	if !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("Expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestPublicKeyFromBytesRejectsNonCurvePoint(t *testing.T) {
	// y = 2 has no matching x on the curve.
	_, err := PublicKeyFromBytes(hexToBytes("0200000000000000000000000000000000000000000000000000000000000000"))
	if !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("Expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	enc := hexToBytes(rfc8032Vectors[0].public)
	pk, err := PublicKeyFromBytes(enc)
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	if !bytes.Equal(pk.Bytes(), enc) {
		t.Error("Encoded public key should match the decoded input")
	}

	again, err := PublicKeyFromBytes(pk.Bytes())
	if err != nil {
		t.Fatalf("Failed to re-decode public key: %v", err)
	}
	if !pk.Equal(again) {
		t.Error("Round-tripped public key should equal the original")
	}
}

func TestPublicKeyBytesIsACopy(t *testing.T) {
	pk, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	leaked := pk.Bytes()
	leaked[0] ^= 0xff
	if !bytes.Equal(pk.Bytes(), hexToBytes(rfc8032Vectors[0].public)) {
		t.Error("Stored encoding aliases the Bytes output")
	}
}

func TestPublicKeyEqual(t *testing.T) {
	a, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	b, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	c, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[1].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}

	if !a.Equal(b) {
		t.Error("Keys decoded from the same bytes should be equal")
	}
	if a.Equal(c) {
		t.Error("Keys decoded from different bytes should not be equal")
	}
	if a.Equal(nil) {
		t.Error("A public key should not equal nil")
	}
}

func TestVerifyHandlesDegenerateSignatures(t *testing.T) {
	pk, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	if pk.Verify([]byte("message"), nil) {
		t.Error("A nil signature should verify false")
	}
	if pk.Verify([]byte("message"), &Signature{}) {
		t.Error("A zero-value signature should verify false")
	}
}

func TestVerifyRejectsInvalidR(t *testing.T) {
	pk, err := PublicKeyFromBytes(hexToBytes(rfc8032Vectors[0].public))
	if err != nil {
		t.Fatalf("Failed to decode public key: %v", err)
	}
	// Decodes at the codec layer, fails the group equation here.
	sig, err := SignatureFromBytes(hexToBytes(
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
			"0000000000000000000000000000000000000000000000000000000000000000"))
	if err != nil {
		t.Fatalf("Failed to decode signature: %v", err)
	}
	if pk.Verify(hexToBytes(rfc8032Vectors[0].message), sig) {
		t.Error("A signature with garbage R should verify false")
	}
}
