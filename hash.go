package easyecies

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// HashLength is the length of the digests accepted by Sign.
const HashLength = sha256.Size

// Hash256 does two rounds of SHA256 hashing. It is the digest Sign expects.
func Hash256(data []byte) []byte {
	h := sha256.Sum256(data)
	h1 := sha256.Sum256(h[:])
	return h1[:]
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	h := sha256.Sum256(buf)
	r := ripemd160.New()
	r.Write(h[:])
	return r.Sum(nil)
}
