package easyecies

import (
	"bytes"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// PublicKeyCompressedLength is the length of a SEC1 compressed public key.
	PublicKeyCompressedLength = 33
	// PublicKeyUncompressedLength is the length of a SEC1 uncompressed public key.
	PublicKeyUncompressedLength = 65

	pubKeyCompressedEven byte = 0x02
	pubKeyCompressedOdd  byte = 0x03
	pubKeyUncompressed   byte = 0x04
)

// PublicKey is a secp256k1 point other than the point at infinity.
type PublicKey struct {
	key *btcec.PublicKey
}

// ParsePublicKey parses a public key in compressed (33 bytes) or uncompressed
// (65 bytes) SEC1 form. The point must satisfy the curve equation.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	switch {
	case len(b) == PublicKeyCompressedLength &&
		(b[0] == pubKeyCompressedEven || b[0] == pubKeyCompressedOdd):
	case len(b) == PublicKeyUncompressedLength && b[0] == pubKeyUncompressed:
	default:
		return nil, fmt.Errorf("%w: unrecognized public key encoding (%d bytes)", ErrInvalidKey, len(b))
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &PublicKey{key: key}, nil
}

// ParsePublicKeyHex parses a hex-encoded public key.
func ParsePublicKeyHex(s string) (*PublicKey, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	return ParsePublicKey(b)
}

// Bytes returns the public key in SEC uncompressed format. The result is 65 bytes long.
func (pbk *PublicKey) Bytes() []byte {
	return pbk.key.SerializeUncompressed()
}

// CompressedBytes returns the public key in SEC compressed format. The result
// is 33 bytes long.
func (pbk *PublicKey) CompressedBytes() []byte {
	return pbk.key.SerializeCompressed()
}

// Hex returns the lowercase hex of the compressed public key.
func (pbk *PublicKey) Hex() string {
	return ToHex(pbk.CompressedBytes())
}

// X returns X component of the public key.
func (pbk *PublicKey) X() *big.Int {
	return pbk.key.X()
}

// Y returns Y component of the public key.
func (pbk *PublicKey) Y() *big.Int {
	return pbk.key.Y()
}

// BitcoinAddress returns the P2PKH Bitcoin address for the compressed public key.
func (pbk *PublicKey) BitcoinAddress() string {
	return base58.CheckEncode(Hash160(pbk.CompressedBytes()), 0x00)
}

// EthereumAddress returns the checksummed Ethereum address for this public key.
func (pbk *PublicKey) EthereumAddress() string {
	return crypto.PubkeyToAddress(*pbk.ToECDSA()).Hex()
}

// Equal returns true if this key is equal to the other key.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if pbk == nil || other == nil {
		return pbk == other
	}
	return pbk.key.IsEqual(other.key)
}

// EqualSerializedCompressed returns true if this key is equal to the other,
// given as serialized compressed representation.
func (pbk *PublicKey) EqualSerializedCompressed(other []byte) bool {
	return bytes.Equal(pbk.CompressedBytes(), other)
}

// ToECDSA returns this key as crypto/ecdsa public key.
func (pbk *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return pbk.key.ToECDSA()
}
