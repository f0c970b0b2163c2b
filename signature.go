package easyecies

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Signature represents a cryptographic signature (ECDSA).
// See https://en.wikipedia.org/wiki/Elliptic_Curve_Digital_Signature_Algorithm
type Signature struct {
	sig *ecdsa.Signature
}

// Sign signs the 32-byte hash with RFC6979 deterministic nonces. Use Hash256
// to produce the hash.
func (sk *SecretKey) Sign(hash []byte) (*Signature, error) {
	if len(hash) != HashLength {
		return nil, fmt.Errorf("hash must be %d bytes, got %d", HashLength, len(hash))
	}
	return &Signature{sig: ecdsa.Sign(sk.key, hash)}, nil
}

// ParseSignature parses a DER-encoded signature.
func ParseSignature(der []byte) (*Signature, error) {
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return &Signature{sig: sig}, nil
}

// Bytes returns the DER encoding of the signature.
func (sig *Signature) Bytes() []byte {
	return sig.sig.Serialize()
}

// Verify verifies the signature using the public key and the hash of the data.
func (sig *Signature) Verify(key *PublicKey, hash []byte) bool {
	return sig.sig.Verify(hash, key.key)
}
