package easyecies

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-jose/go-jose/v3"
	"golang.org/x/crypto/scrypt"
)

const (
	// Key derivation parameters for passphrase protection.
	deriveKey_N      = 16384
	deriveKey_r      = 8
	deriveKey_p      = 1
	deriveKey_keyLen = 32

	saltLength = 32

	jwkKeyType = "EC"
	jwkCurve   = "secp256k1"
)

// secretKeyJSON is the JWK form of a secret key.
// See https://www.rfc-editor.org/rfc/rfc7517.
type secretKeyJSON struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
	D   string `json:"d"`
}

// protectedKeyJSON wraps an encrypted JWK together with the scrypt salt that
// produced the content encryption key.
type protectedKeyJSON struct {
	Salt string          `json:"salt"`
	JWE  json.RawMessage `json:"jwe"`
}

// MarshalJWK returns the key JWK representation.
func (sk *SecretKey) MarshalJWK() (string, error) {
	pub := sk.PublicKey()
	d := sk.Bytes()
	defer zeroize(d)
	b, err := json.Marshal(secretKeyJSON{
		Kty: jwkKeyType,
		Crv: jwkCurve,
		X:   base64urlEncode(padWithZeros(pub.X().Bytes(), 32)),
		Y:   base64urlEncode(padWithZeros(pub.Y().Bytes(), 32)),
		D:   base64urlEncode(d),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseSecretKeyJWK creates a secret key from its JWK representation. The x and
// y members, when present, must match the public key derived from d.
func ParseSecretKeyJWK(data string) (*SecretKey, error) {
	var keyJSON secretKeyJSON
	if err := json.Unmarshal([]byte(data), &keyJSON); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if keyJSON.Kty != jwkKeyType || keyJSON.Crv != jwkCurve {
		return nil, fmt.Errorf("%w: unsupported key type %q/%q", ErrInvalidKey, keyJSON.Kty, keyJSON.Crv)
	}
	d, err := base64urlDecode(keyJSON.D)
	if err != nil {
		return nil, err
	}
	defer zeroize(d)
	sk, err := ParseSecretKey(d)
	if err != nil {
		return nil, err
	}
	if keyJSON.X != "" || keyJSON.Y != "" {
		pub := sk.PublicKey()
		if keyJSON.X != base64urlEncode(padWithZeros(pub.X().Bytes(), 32)) ||
			keyJSON.Y != base64urlEncode(padWithZeros(pub.Y().Bytes(), 32)) {
			sk.Zero()
			return nil, fmt.Errorf("%w: public coordinates do not match the secret", ErrInvalidKey)
		}
	}
	return sk, nil
}

// MarshalJWKWithPassphrase returns the JWK encrypted as a JWE (A256GCM, direct)
// under a key derived from passphrase with scrypt.
// See https://www.tarsnap.com/scrypt/scrypt.pdf.
func (sk *SecretKey) MarshalJWKWithPassphrase(passphrase string) (string, error) {
	return sk.marshalJWKWithPassphrase(rand.Reader, passphrase)
}

func (sk *SecretKey) marshalJWKWithPassphrase(r io.Reader, passphrase string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(r, salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	key, err := derivePassphraseKey([]byte(passphrase), salt)
	if err != nil {
		return "", err
	}
	defer zeroize(key)

	keyJWK, err := sk.MarshalJWK()
	if err != nil {
		return "", err
	}
	encrypter, err := jose.NewEncrypter(jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key}, nil)
	if err != nil {
		return "", err
	}
	object, err := encrypter.Encrypt([]byte(keyJWK))
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(protectedKeyJSON{
		Salt: base64urlEncode(salt),
		JWE:  json.RawMessage(object.FullSerialize()),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseSecretKeyJWKWithPassphrase reverses MarshalJWKWithPassphrase. A wrong
// passphrase yields ErrAuthenticationFailed.
func ParseSecretKeyJWKWithPassphrase(content, passphrase string) (*SecretKey, error) {
	var protected protectedKeyJSON
	if err := json.Unmarshal([]byte(content), &protected); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	salt, err := base64urlDecode(protected.Salt)
	if err != nil {
		return nil, err
	}
	object, err := jose.ParseEncrypted(string(protected.JWE))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	key, err := derivePassphraseKey([]byte(passphrase), salt)
	if err != nil {
		return nil, err
	}
	defer zeroize(key)
	keyJWK, err := object.Decrypt(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer zeroize(keyJWK)
	return ParseSecretKeyJWK(string(keyJWK))
}

func derivePassphraseKey(passphrase, salt []byte) ([]byte, error) {
	key, err := scrypt.Key(passphrase, salt, deriveKey_N, deriveKey_r, deriveKey_p,
		deriveKey_keyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
