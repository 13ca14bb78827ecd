// Package main walks through key derivation, signing and verification on
// secp256k1 with fixed demo inputs
package main

import (
	"fmt"
	"log"
	"math/big"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/signing"
)

func main() {
	fmt.Println("=== Simple Signing Example: secp256k1 ===")

	c, err := curve.NewCurve(curve.Secp256k1)
	if err != nil {
		log.Fatalf("Failed to load curve: %v", err)
	}

	privKey := mustDecimal("75263518707598184987916378021939673586055614731957507592904438851787542395619")
	nonce := mustDecimal("28695618543805844332113829720373285210420739438570883203839696518176414791234")
	hashToSign := mustDecimal("86032112319101611046176971828093669637772856272773459297323797145286374828050")

	// Phase 1: Derive the public key
	fmt.Println("\nPhase 1: Public key derivation...")
	pubKey, err := signing.DerivePublicKey(c, privKey)
	if err != nil {
		log.Fatalf("Failed to derive public key: %v", err)
	}

	uncompressed, err := c.MarshalUncompressed(pubKey)
	if err != nil {
		log.Fatalf("Failed to encode public key: %v", err)
	}
	compressed, err := c.MarshalCompressed(pubKey)
	if err != nil {
		log.Fatalf("Failed to encode public key: %v", err)
	}
	fmt.Printf("  Uncompressed: %x\n", uncompressed)
	fmt.Printf("  Compressed:   %x\n", compressed)

	// Phase 2: Sign with the supplied nonce
	fmt.Println("\nPhase 2: Signing...")
	sig, err := signing.Sign(c, privKey, nonce, hashToSign)
	if err != nil {
		log.Fatalf("Failed to sign: %v", err)
	}
	fmt.Printf("  r = %s\n", sig.R)
	fmt.Printf("  s = %s\n", sig.S)

	// Phase 3: Verify
	fmt.Println("\nPhase 3: Verification...")
	valid, err := signing.Verify(c, pubKey, hashToSign, sig)
	if err != nil {
		log.Fatalf("Verification error: %v", err)
	}
	if !valid {
		log.Fatal("Signature verification failed!")
	}
	fmt.Println("  Signature verified")

	// Phase 4: A tampered hash must not verify
	fmt.Println("\nPhase 4: Tampered hash...")
	tampered := new(big.Int).Add(hashToSign, big.NewInt(1))
	valid, err = signing.Verify(c, pubKey, tampered, sig)
	if err != nil {
		log.Fatalf("Verification error: %v", err)
	}
	if valid {
		log.Fatal("Tampered hash verified!")
	}
	fmt.Println("  Tampered hash rejected")

	fmt.Println("\n=== Signing Complete ===")
}

func mustDecimal(s string) *big.Int {
	v, err := math.ParseDecimal(s)
	if err != nil {
		log.Fatalf("Bad literal %q: %v", s, err)
	}
	return v
}
