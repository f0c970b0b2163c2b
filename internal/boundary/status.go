package boundary

import (
	"errors"

	"github.com/regnull/easyecies"
)

// Status is the out-of-band result code of every boundary call. The values are
// part of the C ABI and must not be renumbered.
type Status int

const (
	StatusOK Status = iota
	StatusInvalidKey
	StatusMalformedEncoding
	StatusMalformedMessage
	StatusAuthenticationFailed
	StatusEntropyUnavailable
	StatusInvalidArgument
	StatusInternal
)

var errInvalidArgument = errors.New("invalid argument")

var statusNames = map[Status]string{
	StatusOK:                   "ok",
	StatusInvalidKey:           "invalid_key",
	StatusMalformedEncoding:    "malformed_encoding",
	StatusMalformedMessage:     "malformed_message",
	StatusAuthenticationFailed: "authentication_failed",
	StatusEntropyUnavailable:   "entropy_unavailable",
	StatusInvalidArgument:      "invalid_argument",
	StatusInternal:             "internal",
}

var statusMessages = map[Status]string{
	StatusOK:                   "success",
	StatusInvalidKey:           "key is malformed or out of range",
	StatusMalformedEncoding:    "input is not valid hex or base64",
	StatusMalformedMessage:     "encrypted message is too short",
	StatusAuthenticationFailed: "message authentication failed",
	StatusEntropyUnavailable:   "random number generator failed",
	StatusInvalidArgument:      "null pointer or result is not valid text",
	StatusInternal:             "internal error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Message returns a human readable description of s.
func (s Status) Message() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return "unknown status"
}

// StatusOf classifies err. A malformed ephemeral key inside a message matches
// both authentication and key errors; it is reported as an authentication
// failure because the caller's key is not at fault.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, easyecies.ErrMalformedEncoding):
		return StatusMalformedEncoding
	case errors.Is(err, easyecies.ErrMalformedMessage):
		return StatusMalformedMessage
	case errors.Is(err, easyecies.ErrAuthenticationFailed):
		return StatusAuthenticationFailed
	case errors.Is(err, easyecies.ErrInvalidKey):
		return StatusInvalidKey
	case errors.Is(err, easyecies.ErrEntropyUnavailable):
		return StatusEntropyUnavailable
	case errors.Is(err, errInvalidArgument):
		return StatusInvalidArgument
	}
	return StatusInternal
}
