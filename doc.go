/*
Package easyecies implements the Elliptic Curve Integrated Encryption Scheme
(ECIES) over secp256k1, the curve used by Bitcoin.

Encrypt generates an ephemeral key pair, computes the ECDH shared secret with
the recipient's public key, expands it with HKDF-SHA256 into an AES-256-CTR key
and an HMAC-SHA256 key, and returns

	ephemeral_pubkey(33) || iv(16) || ciphertext || tag(32)

Decrypt verifies the tag in constant time before decrypting anything.

Messages in the format written by the eciesrs family of libraries
(uncompressed ephemeral key, AES-256-GCM) are accepted by Decrypt and produced
by EncryptCompat.

Keys travel as lowercase hex, messages as standard base64, see ToHex, FromHex,
ToBase64 and FromBase64. Secret keys can also be exported as JWK, as a
passphrase-protected JWE, or as a BIP-39 mnemonic.

All functions are safe for concurrent use.

The C-callable library lives in cmd/libecies.
*/
package easyecies
