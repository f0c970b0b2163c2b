package easyecies

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SecretKeyLength is the length of a serialized secret key.
	SecretKeyLength = 32

	PBKDF2_ITER = 16384
	PBKDF2_SIZE = SecretKeyLength
)

// SecretKey is a secp256k1 secret scalar in [1, n-1].
type SecretKey struct {
	key *btcec.PrivateKey
}

// GenerateSecretKey creates a new random secret key using crypto/rand.
func GenerateSecretKey() (*SecretKey, error) {
	return generateSecretKey(rand.Reader)
}

// GenerateKeyPair creates a new random secret key and its public key.
func GenerateKeyPair() (*SecretKey, *PublicKey, error) {
	sk, err := GenerateSecretKey()
	if err != nil {
		return nil, nil, err
	}
	return sk, sk.PublicKey(), nil
}

// generateSecretKey draws 32 bytes from r until they form a scalar in [1, n-1].
// Draws that are zero or not below the curve order are discarded rather than
// reduced, so the result is uniform.
func generateSecretKey(r io.Reader) (*SecretKey, error) {
	var buf [SecretKeyLength]byte
	defer zeroize(buf[:])
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		var s secp256k1.ModNScalar
		if overflow := s.SetByteSlice(buf[:]); !overflow && !s.IsZero() {
			return &SecretKey{key: secp256k1.NewPrivateKey(&s)}, nil
		}
		s.Zero()
	}
}

// ParseSecretKey parses a 32-byte big-endian secret key. The value must be
// non-zero and below the curve order.
func ParseSecretKey(b []byte) (*SecretKey, error) {
	if len(b) != SecretKeyLength {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidKey,
			SecretKeyLength, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		s.Zero()
		return nil, fmt.Errorf("%w: secret key is not below the curve order", ErrInvalidKey)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: secret key is zero", ErrInvalidKey)
	}
	return &SecretKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// ParseSecretKeyHex parses a hex-encoded secret key.
func ParseSecretKeyHex(s string) (*SecretKey, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	defer zeroize(b)
	return ParseSecretKey(b)
}

// NewSecretKeyFromPassword creates a secret key from password using PBKDF2-SHA256.
// See https://en.wikipedia.org/wiki/PBKDF2.
func NewSecretKeyFromPassword(password, salt []byte) (*SecretKey, error) {
	secret := pbkdf2.Key(password, salt, PBKDF2_ITER, PBKDF2_SIZE, sha256.New)
	defer zeroize(secret)
	return ParseSecretKey(secret)
}

// NewSecretKeyFromMnemonic creates a secret key from a BIP-39 mnemonic phrase
// produced by Mnemonic.
func NewSecretKeyFromMnemonic(mnemonic string) (*SecretKey, error) {
	b, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	defer zeroize(b)
	return ParseSecretKey(padWithZeros(b, SecretKeyLength))
}

// Bytes returns the 32-byte big-endian serialization of the secret key. The
// caller owns the returned slice.
func (sk *SecretKey) Bytes() []byte {
	return sk.key.Serialize()
}

// Hex returns the lowercase hex serialization of the secret key.
func (sk *SecretKey) Hex() string {
	b := sk.Bytes()
	defer zeroize(b)
	return ToHex(b)
}

// PublicKey derives the public key by scalar multiplication of the base point.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{key: sk.key.PubKey()}
}

// Mnemonic returns a 24-word mnemonic phrase which can be used to recover this key.
func (sk *SecretKey) Mnemonic() (string, error) {
	b := sk.Bytes()
	defer zeroize(b)
	return bip39.NewMnemonic(b)
}

// Equal reports whether both keys hold the same scalar, in constant time.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	if sk == nil || other == nil {
		return sk == other
	}
	a, b := sk.Bytes(), other.Bytes()
	defer zeroize(a)
	defer zeroize(b)
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Zero wipes the scalar. The key must not be used afterwards.
func (sk *SecretKey) Zero() {
	if sk == nil || sk.key == nil {
		return
	}
	sk.key.Zero()
}

// sharedSecret computes the ECDH shared secret with counterParty: the 32-byte
// x coordinate of sk * counterParty. The caller must zeroize the result.
func (sk *SecretKey) sharedSecret(counterParty *PublicKey) []byte {
	return btcec.GenerateSharedSecret(sk.key, counterParty.key)
}

// ECDH returns the raw shared secret between this key and publicKey. For
// Alice and Bob the value is the same whether derived from Alice's secret key
// and Bob's public key or the other way round. It is not a suitable encryption
// key by itself.
//
// See https://en.wikipedia.org/wiki/Elliptic-curve_Diffie%E2%80%93Hellman.
func (sk *SecretKey) ECDH(publicKey *PublicKey) ([]byte, error) {
	if sk == nil || publicKey == nil {
		return nil, fmt.Errorf("%w: nil key", ErrInvalidKey)
	}
	return padWithZeros(sk.sharedSecret(publicKey), 32), nil
}
