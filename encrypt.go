package easyecies

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// Subkey sizes.
	encryptionKeyLength = 32 // AES-256
	macKeyLength        = 32 // HMAC-SHA256

	hkdfInfo = "easyecies v1 aes-256-ctr hmac-sha256"
)

// keyMaterial holds the subkeys derived from one shared secret.
type keyMaterial struct {
	buf [encryptionKeyLength + macKeyLength]byte
}

func (km *keyMaterial) encryptionKey() []byte {
	return km.buf[:encryptionKeyLength]
}

func (km *keyMaterial) macKey() []byte {
	return km.buf[encryptionKeyLength:]
}

func (km *keyMaterial) zero() {
	zeroize(km.buf[:])
}

// deriveKeys expands the ECDH shared secret into an encryption subkey and a MAC
// subkey using HKDF-SHA256. The ephemeral public key is the salt, binding the
// subkeys to the ephemeral key that produced them.
func deriveKeys(sharedSecret, ephemeralPublicKey []byte) (*keyMaterial, error) {
	kdf := hkdf.New(sha256.New, sharedSecret, ephemeralPublicKey, []byte(hkdfInfo))
	km := &keyMaterial{}
	if _, err := io.ReadFull(kdf, km.buf[:]); err != nil {
		km.zero()
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}
	return km, nil
}

// xorKeyStream applies AES-256-CTR keyed with the encryption subkey to src,
// writing to dst. Encryption and decryption are the same operation.
func xorKeyStream(km *keyMaterial, iv, dst, src []byte) error {
	block, err := aes.NewCipher(km.encryptionKey())
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}
	cipher.NewCTR(block, iv).XORKeyStream(dst, src)
	return nil
}

// computeTag returns HMAC-SHA256(macKey, iv || ciphertext).
func computeTag(km *keyMaterial, iv, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, km.macKey())
	mac.Write(iv)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// verifyTag compares the expected tag with tag in constant time.
func verifyTag(km *keyMaterial, iv, ciphertext, tag []byte) bool {
	return hmac.Equal(computeTag(km, iv, ciphertext), tag)
}
