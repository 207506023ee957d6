// Package hexutil holds the hex conventions used by the command-line
// tool: lowercase output, and input that tolerates an optional 0x prefix.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Decode decodes a hex string, ignoring a leading "0x" or "0X".
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// DecodeExact decodes a hex string and checks the byte length.
func DecodeExact(s string, size int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("expected %d bytes, got %d", size, len(b))
	}
	return b, nil
}

// Encode encodes bytes as lowercase hex without a prefix.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
