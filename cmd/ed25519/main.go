package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mahdiidarabi/ed25519/internal/hexutil"
	"github.com/mahdiidarabi/ed25519/pkg/ed25519"
)

func main() {
	var (
		keygen      = flag.Bool("keygen", false, "Generate a new key pair")
		sign        = flag.Bool("sign", false, "Sign a message")
		verify      = flag.Bool("verify", false, "Verify a signature")
		seed        = flag.String("seed", "", "Private key seed in hex format (32 bytes)")
		publicKey   = flag.String("public-key", "", "Public key in hex format (32 bytes)")
		signature   = flag.String("signature", "", "Signature in hex format (64 bytes)")
		message     = flag.String("message", "", "Message as a literal string")
		messageHex  = flag.String("message-hex", "", "Message in hex format")
		messageFile = flag.String("message-file", "", "Path to a file containing the message")
	)
	flag.Parse()

	switch {
	case *keygen:
		runKeygen()
	case *sign:
		runSign(*seed, readMessage(*message, *messageHex, *messageFile))
	case *verify:
		runVerify(*publicKey, *signature, readMessage(*message, *messageHex, *messageFile))
	default:
		fmt.Fprintf(os.Stderr, "Error: one of --keygen, --sign or --verify is required\n")
		flag.Usage()
		os.Exit(1)
	}
}

func runKeygen() {
	priv, err := ed25519.GeneratePrivateKey(nil)
	if err != nil {
		fatalf("Error: %v", err)
	}
	fmt.Printf("Seed:       %s\n", hexutil.Encode(priv.Bytes()))
	fmt.Printf("Public key: %s\n", hexutil.Encode(priv.Expand().PublicKey().Bytes()))
}

func runSign(seedHex string, message []byte) {
	if seedHex == "" {
		fatalf("Error: --sign requires --seed")
	}
	seed, err := hexutil.DecodeExact(seedHex, ed25519.SeedSize)
	if err != nil {
		fatalf("Error: invalid seed: %v", err)
	}
	priv, err := ed25519.PrivateKeyFromBytes(seed)
	if err != nil {
		fatalf("Error: %v", err)
	}

	expanded := priv.Expand()
	sig := expanded.Sign(message)

	fmt.Printf("Public key: %s\n", hexutil.Encode(expanded.PublicKey().Bytes()))
	fmt.Printf("Signature:  %s\n", hexutil.Encode(sig.Bytes()))
}

func runVerify(publicKeyHex, signatureHex string, message []byte) {
	if publicKeyHex == "" || signatureHex == "" {
		fatalf("Error: --verify requires --public-key and --signature")
	}
	pkBytes, err := hexutil.Decode(publicKeyHex)
	if err != nil {
		fatalf("Error: invalid public key: %v", err)
	}
	pk, err := ed25519.PublicKeyFromBytes(pkBytes)
	if err != nil {
		fatalf("Error: %v", err)
	}
	sigBytes, err := hexutil.Decode(signatureHex)
	if err != nil {
		fatalf("Error: invalid signature: %v", err)
	}
	sig, err := ed25519.SignatureFromBytes(sigBytes)
	if err != nil {
		fatalf("Error: %v", err)
	}

	if pk.Verify(message, sig) {
		fmt.Println("Signature is valid")
		return
	}
	fmt.Println("Signature is INVALID")
	os.Exit(1)
}

// readMessage resolves the message from whichever of the three flags was
// given. An empty message is legal, so no flag at all means signing or
// verifying the empty string.
func readMessage(literal, hexStr, path string) []byte {
	given := 0
	for _, s := range []string{literal, hexStr, path} {
		if s != "" {
			given++
		}
	}
	if given > 1 {
		fatalf("Error: --message, --message-hex and --message-file are mutually exclusive")
	}

	switch {
	case hexStr != "":
		b, err := hexutil.Decode(hexStr)
		if err != nil {
			fatalf("Error: invalid message hex: %v", err)
		}
		return b
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			fatalf("Error: failed to read message file: %v", err)
		}
		return b
	default:
		return []byte(literal)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
