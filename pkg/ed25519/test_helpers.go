package ed25519

import (
	"encoding/hex"
	"strings"
)

// hexToBytes decodes a hex string, tolerating an optional 0x prefix. It
// panics on malformed input; it exists for tests, where the inputs are
// compile-time constants.
func hexToBytes(s string) []byte {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ed25519: bad hex in test fixture: " + err.Error())
	}
	return b
}
