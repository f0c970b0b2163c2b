package easyecies

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Native message layout:
//
//	[ephemeral_pubkey:33][iv:16][ciphertext:len(plaintext)][tag:32]
const (
	// NonceLength is the length of the AES-CTR initialization vector.
	NonceLength = 16
	// TagLength is the length of the HMAC-SHA256 tag.
	TagLength = 32
	// Overhead is the number of bytes Encrypt adds to the plaintext, which is
	// also the minimum length of a native message.
	Overhead = PublicKeyCompressedLength + NonceLength + TagLength

	offsetNonce      = PublicKeyCompressedLength
	offsetCiphertext = offsetNonce + NonceLength
)

// Encrypt encrypts plaintext for recipient using ECIES over secp256k1.
//
// A fresh ephemeral key pair is generated for every call, so two encryptions of
// the same plaintext differ. The ephemeral secret, shared secret and derived
// subkeys are wiped before returning.
func Encrypt(recipient *PublicKey, plaintext []byte) ([]byte, error) {
	return encrypt(rand.Reader, recipient, plaintext)
}

func encrypt(r io.Reader, recipient *PublicKey, plaintext []byte) ([]byte, error) {
	if recipient == nil {
		return nil, fmt.Errorf("%w: recipient public key is nil", ErrInvalidKey)
	}

	ephemeral, err := generateSecretKey(r)
	if err != nil {
		return nil, err
	}
	defer ephemeral.Zero()
	ephemeralPublicKey := ephemeral.PublicKey().CompressedBytes()

	shared := ephemeral.sharedSecret(recipient)
	km, err := deriveKeys(shared, ephemeralPublicKey)
	zeroize(shared)
	if err != nil {
		return nil, err
	}
	defer km.zero()

	out := make([]byte, Overhead+len(plaintext))
	copy(out, ephemeralPublicKey)
	iv := out[offsetNonce:offsetCiphertext]
	if _, err := io.ReadFull(r, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	ciphertext := out[offsetCiphertext : offsetCiphertext+len(plaintext)]
	if err := xorKeyStream(km, iv, ciphertext, plaintext); err != nil {
		return nil, err
	}
	copy(out[offsetCiphertext+len(plaintext):], computeTag(km, iv, ciphertext))
	return out, nil
}

// Decrypt decrypts a message produced by Encrypt, or by EncryptCompat when the
// message starts with an uncompressed ephemeral key.
//
// The tag is verified in constant time before any ciphertext is decrypted.
// Any modification of the message yields ErrAuthenticationFailed. A message
// shorter than Overhead yields ErrMalformedMessage.
func Decrypt(recipient *SecretKey, message []byte) ([]byte, error) {
	if recipient == nil {
		return nil, fmt.Errorf("%w: recipient secret key is nil", ErrInvalidKey)
	}
	if len(message) > 0 && message[0] == pubKeyUncompressed {
		return decryptCompat(recipient, message)
	}
	if len(message) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedMessage,
			len(message), Overhead)
	}

	tagOffset := len(message) - TagLength
	ephemeralPublicKey := message[:offsetNonce]
	iv := message[offsetNonce:offsetCiphertext]
	ciphertext := message[offsetCiphertext:tagOffset]
	tag := message[tagOffset:]

	ephemeral, err := ParsePublicKey(ephemeralPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: ephemeral key: %w", ErrAuthenticationFailed, err)
	}

	shared := recipient.sharedSecret(ephemeral)
	km, err := deriveKeys(shared, ephemeralPublicKey)
	zeroize(shared)
	if err != nil {
		return nil, err
	}
	defer km.zero()

	if !verifyTag(km, iv, ciphertext, tag) {
		return nil, ErrAuthenticationFailed
	}

	plaintext := make([]byte, PlaintextLength(len(message)))
	if err := xorKeyStream(km, iv, plaintext, ciphertext); err != nil {
		return nil, err
	}
	return plaintext, nil
}

// EncryptToBase64 encrypts plaintext and returns the message base64-encoded.
func EncryptToBase64(recipient *PublicKey, plaintext []byte) (string, error) {
	message, err := Encrypt(recipient, plaintext)
	if err != nil {
		return "", err
	}
	return ToBase64(message), nil
}

// DecryptBase64 decodes a base64 message and decrypts it.
func DecryptBase64(recipient *SecretKey, message string) ([]byte, error) {
	b, err := FromBase64(message)
	if err != nil {
		return nil, err
	}
	return Decrypt(recipient, b)
}
