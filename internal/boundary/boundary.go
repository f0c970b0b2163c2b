// Package boundary implements the operations exported to C callers in plain
// Go. Every call returns a value and a Status; failures never escape as
// panics. cmd/libecies only converts between C and Go types around it.
package boundary

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/regnull/easyecies"
	"github.com/regnull/easyecies/internal/config"
	"github.com/regnull/easyecies/internal/log"
)

// Boundary holds the settings shared by all calls. It is safe for concurrent use.
type Boundary struct {
	log    *log.Logger
	compat bool
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(b *Boundary) {
		b.log = logger
	}
}

// WithFormat selects the message format written by Encrypt, config.FormatNative
// or config.FormatCompat. Decrypt accepts both regardless.
func WithFormat(format string) Option {
	return func(b *Boundary) {
		b.compat = format == config.FormatCompat
	}
}

// New returns a Boundary that logs nothing and writes native messages.
func New(opts ...Option) *Boundary {
	b := &Boundary{log: log.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromConfig builds a Boundary from loaded configuration.
func FromConfig(cfg *config.Config) (*Boundary, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := log.New(log.WithLevel(level), log.WithFormat(log.Format(cfg.Log.Format)))
	return New(WithLogger(logger), WithFormat(cfg.Format)), nil
}

// call runs fn, converting errors and panics into a Status.
func call[T any](b *Boundary, op string, fn func() (T, error)) (result T, status Status) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result, status = zero, StatusInternal
			b.log.Error().Str("op", op).Str("panic", fmt.Sprint(r)).Msg("recovered panic at boundary")
		}
	}()

	var err error
	result, err = fn()
	if err != nil {
		var zero T
		status = StatusOf(err)
		b.log.Debug().Str("op", op).Stringer("status", status).Err(err).Msg("call failed")
		return zero, status
	}
	return result, StatusOK
}

// GenerateSecretKey returns a new hex-encoded secret key.
func (b *Boundary) GenerateSecretKey() (string, Status) {
	return call(b, "generate_secret_key", func() (string, error) {
		sk, err := easyecies.GenerateSecretKey()
		if err != nil {
			return "", err
		}
		defer sk.Zero()
		return sk.Hex(), nil
	})
}

// PublicKeyFrom returns the hex-encoded compressed public key of secretKeyHex.
func (b *Boundary) PublicKeyFrom(secretKeyHex string) (string, Status) {
	return call(b, "public_key_from", func() (string, error) {
		sk, err := easyecies.ParseSecretKeyHex(secretKeyHex)
		if err != nil {
			return "", err
		}
		defer sk.Zero()
		return sk.PublicKey().Hex(), nil
	})
}

// Encrypt encrypts message for publicKeyHex and returns the base64 message.
func (b *Boundary) Encrypt(publicKeyHex string, message []byte) (string, Status) {
	if b.compat {
		return b.EncryptCompat(publicKeyHex, message)
	}
	return call(b, "encrypt", func() (string, error) {
		pk, err := easyecies.ParsePublicKeyHex(publicKeyHex)
		if err != nil {
			return "", err
		}
		return easyecies.EncryptToBase64(pk, message)
	})
}

// EncryptCompat is Encrypt in the compat message format.
func (b *Boundary) EncryptCompat(publicKeyHex string, message []byte) (string, Status) {
	return call(b, "encrypt_compat", func() (string, error) {
		pk, err := easyecies.ParsePublicKeyHex(publicKeyHex)
		if err != nil {
			return "", err
		}
		encrypted, err := easyecies.EncryptCompat(pk, message)
		if err != nil {
			return "", err
		}
		return easyecies.ToBase64(encrypted), nil
	})
}

// Decrypt decrypts a base64 message with secretKeyHex and returns the raw
// plaintext.
func (b *Boundary) Decrypt(secretKeyHex, message string) ([]byte, Status) {
	return call(b, "decrypt", func() ([]byte, error) {
		return decrypt(secretKeyHex, message)
	})
}

// DecryptText is Decrypt for payloads that travel as C strings. Plaintext
// containing NUL or invalid UTF-8 is rejected with StatusInvalidArgument
// rather than truncated.
func (b *Boundary) DecryptText(secretKeyHex, message string) (string, Status) {
	return call(b, "decrypt_text", func() (string, error) {
		plaintext, err := decrypt(secretKeyHex, message)
		if err != nil {
			return "", err
		}
		if bytes.IndexByte(plaintext, 0) >= 0 {
			return "", fmt.Errorf("%w: plaintext contains NUL, use the bytes variant", errInvalidArgument)
		}
		if !utf8.Valid(plaintext) {
			return "", fmt.Errorf("%w: plaintext is not valid UTF-8, use the bytes variant", errInvalidArgument)
		}
		return string(plaintext), nil
	})
}

// InvalidArgument reports a caller error detected before any Go call was
// made, such as a NULL pointer.
func (b *Boundary) InvalidArgument(op, reason string) Status {
	b.log.Debug().Str("op", op).Str("reason", reason).Msg("invalid argument")
	return StatusInvalidArgument
}

func decrypt(secretKeyHex, message string) ([]byte, error) {
	sk, err := easyecies.ParseSecretKeyHex(secretKeyHex)
	if err != nil {
		return nil, err
	}
	defer sk.Zero()
	return easyecies.DecryptBase64(sk, message)
}
