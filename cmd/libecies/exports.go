//go:build cgo

package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"math"
	"sync"
	"unsafe"

	"github.com/regnull/easyecies/internal/boundary"
	"github.com/regnull/easyecies/internal/config"
)

var (
	once    sync.Once
	lib     *boundary.Boundary
	handles = boundary.NewRegistry()
)

// instance loads configuration from the environment on first use.
func instance() *boundary.Boundary {
	once.Do(func() {
		cfg, err := config.Load(config.WithDefaultLevel("disabled"))
		if err == nil {
			lib, err = boundary.FromConfig(cfg)
		}
		if err != nil {
			lib = boundary.New()
		}
	})
	return lib
}

func setStatus(status *C.int, s boundary.Status) {
	if status != nil {
		*status = C.int(s)
	}
}

// recoverStatus is deferred by every export so that no panic unwinds into C.
func recoverStatus(status *C.int) {
	if r := recover(); r != nil {
		setStatus(status, boundary.StatusInternal)
	}
}

// newText copies s into C memory with a terminating NUL and registers it.
func newText(s string) *C.char {
	p := C.CString(s)
	handles.Track(uintptr(unsafe.Pointer(p)), len(s)+1)
	return p
}

// newBytes copies b into C memory and registers it. At least one byte is
// allocated so an empty result is still a releasable handle.
func newBytes(b []byte) unsafe.Pointer {
	size := len(b)
	if size == 0 {
		size = 1
	}
	p := C.malloc(C.size_t(size))
	C.memset(p, 0, C.size_t(size))
	if len(b) > 0 {
		C.memcpy(p, unsafe.Pointer(&b[0]), C.size_t(len(b)))
	}
	handles.Track(uintptr(p), size)
	return p
}

func textResult(s string, st boundary.Status, status *C.int) *C.char {
	setStatus(status, st)
	if st != boundary.StatusOK {
		return nil
	}
	return newText(s)
}

//export ecies_generate_secret_key
func ecies_generate_secret_key(status *C.int) *C.char {
	defer recoverStatus(status)
	sk, st := instance().GenerateSecretKey()
	return textResult(sk, st, status)
}

//export ecies_public_key_from
func ecies_public_key_from(secretKey *C.char, status *C.int) *C.char {
	defer recoverStatus(status)
	if secretKey == nil {
		setStatus(status, instance().InvalidArgument("public_key_from", "null secret key"))
		return nil
	}
	pk, st := instance().PublicKeyFrom(C.GoString(secretKey))
	return textResult(pk, st, status)
}

//export ecies_encrypt
func ecies_encrypt(publicKey, message *C.char, status *C.int) *C.char {
	defer recoverStatus(status)
	if publicKey == nil || message == nil {
		setStatus(status, instance().InvalidArgument("encrypt", "null argument"))
		return nil
	}
	c, st := instance().Encrypt(C.GoString(publicKey), []byte(C.GoString(message)))
	return textResult(c, st, status)
}

//export ecies_encrypt_compat
func ecies_encrypt_compat(publicKey, message *C.char, status *C.int) *C.char {
	defer recoverStatus(status)
	if publicKey == nil || message == nil {
		setStatus(status, instance().InvalidArgument("encrypt_compat", "null argument"))
		return nil
	}
	c, st := instance().EncryptCompat(C.GoString(publicKey), []byte(C.GoString(message)))
	return textResult(c, st, status)
}

//export ecies_encrypt_bytes
func ecies_encrypt_bytes(publicKey *C.char, message *C.uint8_t, length C.size_t, status *C.int) *C.char {
	defer recoverStatus(status)
	if publicKey == nil || (message == nil && length > 0) {
		setStatus(status, instance().InvalidArgument("encrypt_bytes", "null argument"))
		return nil
	}
	if uint64(length) > math.MaxInt32 {
		setStatus(status, instance().InvalidArgument("encrypt_bytes", "message too large"))
		return nil
	}
	var plaintext []byte
	if length > 0 {
		plaintext = C.GoBytes(unsafe.Pointer(message), C.int(length))
	}
	c, st := instance().Encrypt(C.GoString(publicKey), plaintext)
	return textResult(c, st, status)
}

//export ecies_decrypt
func ecies_decrypt(secretKey, message *C.char, status *C.int) *C.char {
	defer recoverStatus(status)
	if secretKey == nil || message == nil {
		setStatus(status, instance().InvalidArgument("decrypt", "null argument"))
		return nil
	}
	m, st := instance().DecryptText(C.GoString(secretKey), C.GoString(message))
	return textResult(m, st, status)
}

//export ecies_decrypt_bytes
func ecies_decrypt_bytes(secretKey, message *C.char, outLen *C.size_t, status *C.int) *C.uint8_t {
	defer recoverStatus(status)
	if secretKey == nil || message == nil || outLen == nil {
		setStatus(status, instance().InvalidArgument("decrypt_bytes", "null argument"))
		return nil
	}
	*outLen = 0
	m, st := instance().Decrypt(C.GoString(secretKey), C.GoString(message))
	setStatus(status, st)
	if st != boundary.StatusOK {
		return nil
	}
	p := newBytes(m)
	*outLen = C.size_t(len(m))
	for i := range m {
		m[i] = 0
	}
	return (*C.uint8_t)(p)
}

//export ecies_status_message
func ecies_status_message(code C.int) *C.char {
	return newText(boundary.Status(code).Message())
}

//export ecies_release
func ecies_release(p unsafe.Pointer) {
	size, ok := handles.Release(uintptr(p))
	if !ok {
		return
	}
	C.memset(p, 0, C.size_t(size))
	C.free(p)
}

//export ecies_outstanding_handles
func ecies_outstanding_handles() C.size_t {
	return C.size_t(handles.Outstanding())
}
