package easyecies

import "errors"

var (
	// ErrInvalidKey indicates malformed or out-of-range key bytes.
	ErrInvalidKey = errors.New("easyecies: invalid key")

	// ErrMalformedEncoding indicates bad hex or base64 input.
	ErrMalformedEncoding = errors.New("easyecies: malformed encoding")

	// ErrMalformedMessage indicates an encrypted message that is too short to hold
	// its fixed-size fields.
	ErrMalformedMessage = errors.New("easyecies: malformed message")

	// ErrAuthenticationFailed indicates the message tag did not verify. No plaintext
	// is released when this is returned.
	ErrAuthenticationFailed = errors.New("easyecies: authentication failed")

	// ErrEntropyUnavailable indicates the random source failed. Callers should treat
	// it as fatal.
	ErrEntropyUnavailable = errors.New("easyecies: entropy unavailable")
)
