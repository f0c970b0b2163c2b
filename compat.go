package easyecies

import (
	"fmt"

	eciesgo "github.com/ecies/go/v2"
)

// Compat message layout, as written by the eciesrs family of libraries:
//
//	[ephemeral_pubkey:65][nonce:16][tag:16][ciphertext]
//
// The symmetric part is HKDF-SHA256 + AES-256-GCM.
const (
	compatNonceLength = 16
	compatTagLength   = 16
	// CompatOverhead is the number of bytes EncryptCompat adds to the plaintext.
	CompatOverhead = PublicKeyUncompressedLength + compatNonceLength + compatTagLength
)

// EncryptCompat encrypts plaintext for recipient in the compat format, readable
// by clients of the eciesrs family. The payload must not be empty.
func EncryptCompat(recipient *PublicKey, plaintext []byte) ([]byte, error) {
	if recipient == nil {
		return nil, fmt.Errorf("%w: recipient public key is nil", ErrInvalidKey)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: compat format requires a non-empty payload", ErrMalformedMessage)
	}
	pub, err := eciesgo.NewPublicKeyFromBytes(recipient.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	message, err := eciesgo.Encrypt(pub, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return message, nil
}

// decryptCompat decrypts a compat format message. GCM verifies the tag before
// releasing any plaintext.
func decryptCompat(recipient *SecretKey, message []byte) ([]byte, error) {
	if len(message) <= CompatOverhead {
		return nil, fmt.Errorf("%w: compat message of %d bytes, need more than %d",
			ErrMalformedMessage, len(message), CompatOverhead)
	}
	if _, err := ParsePublicKey(message[:PublicKeyUncompressedLength]); err != nil {
		return nil, fmt.Errorf("%w: ephemeral key: %w", ErrAuthenticationFailed, err)
	}

	secret := recipient.Bytes()
	defer zeroize(secret)
	priv := eciesgo.NewPrivateKeyFromBytes(secret)
	defer priv.D.SetInt64(0)

	plaintext, err := eciesgo.Decrypt(priv, message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}
