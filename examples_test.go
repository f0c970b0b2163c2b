package easyecies

import (
	"fmt"
	"log"
)

func ExampleSecretKey_Sign() {
	privateKey, err := ParseSecretKeyHex("0000000000000000000000000000000000000000000000000000000000003039")
	if err != nil {
		log.Fatal(err)
	}
	hash := Hash256([]byte("super secret message"))
	signature, err := privateKey.Sign(hash)
	if err != nil {
		log.Fatal(err)
	}
	success := signature.Verify(privateKey.PublicKey(), hash)
	fmt.Printf("Signature verified: %v\n", success)
	// Output: Signature verified: true
}

func ExampleEncrypt() {
	secretKey, err := GenerateSecretKey()
	if err != nil {
		log.Fatal(err)
	}
	publicKeyHex := secretKey.PublicKey().Hex()

	publicKey, err := ParsePublicKeyHex(publicKeyHex)
	if err != nil {
		log.Fatal(err)
	}
	encrypted, err := EncryptToBase64(publicKey, []byte("Good morning Cape Town!"))
	if err != nil {
		log.Fatal(err)
	}
	decrypted, err := DecryptBase64(secretKey, encrypted)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", decrypted)
	// Output: Good morning Cape Town!
}

func ExampleSecretKey_MarshalJWKWithPassphrase() {
	privateKey, err := ParseSecretKeyHex("0000000000000000000000000000000000000000000000000000000000003039")
	if err != nil {
		log.Fatal(err)
	}
	encryptedKey, err := privateKey.MarshalJWKWithPassphrase("my passphrase")
	if err != nil {
		log.Fatal(err)
	}
	decryptedKey, err := ParseSecretKeyJWKWithPassphrase(encryptedKey, "my passphrase")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", decryptedKey.Hex())
	// Output: 0000000000000000000000000000000000000000000000000000000000003039
}
