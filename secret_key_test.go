package easyecies

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func scalarBytes(b byte) []byte {
	s := make([]byte, SecretKeyLength)
	s[SecretKeyLength-1] = b
	return s
}

func Test_SecretKey_Generate(t *testing.T) {
	assert := assert.New(t)

	sk, err := GenerateSecretKey()
	assert.NoError(err)
	assert.Len(sk.Bytes(), SecretKeyLength)
	assert.Len(sk.Hex(), 2*SecretKeyLength)

	other, pub, err := GenerateKeyPair()
	assert.NoError(err)
	assert.False(sk.Equal(other))
	assert.True(pub.Equal(other.PublicKey()))
}

func Test_SecretKey_GenerateResamplesOutOfRange(t *testing.T) {
	assert := assert.New(t)

	var draws []byte
	draws = append(draws, bytes.Repeat([]byte{0xff}, SecretKeyLength)...)
	order, err := FromHex(curveOrderHex)
	require.NoError(t, err)
	draws = append(draws, order...)
	draws = append(draws, make([]byte, SecretKeyLength)...)
	draws = append(draws, scalarBytes(7)...)

	sk, err := generateSecretKey(bytes.NewReader(draws))
	assert.NoError(err)
	assert.Equal(scalarBytes(7), sk.Bytes())
}

func Test_SecretKey_GenerateEntropyFailure(t *testing.T) {
	assert := assert.New(t)

	_, err := generateSecretKey(iotest.ErrReader(errors.New("no entropy")))
	assert.ErrorIs(err, ErrEntropyUnavailable)

	_, err = generateSecretKey(bytes.NewReader(make([]byte, 10)))
	assert.ErrorIs(err, ErrEntropyUnavailable)
}

func Test_SecretKey_Parse(t *testing.T) {
	assert := assert.New(t)

	sk, err := ParseSecretKey(scalarBytes(1))
	assert.NoError(err)
	assert.Equal("0000000000000000000000000000000000000000000000000000000000000001", sk.Hex())

	_, err = ParseSecretKey(make([]byte, SecretKeyLength))
	assert.ErrorIs(err, ErrInvalidKey)

	_, err = ParseSecretKey(make([]byte, 31))
	assert.ErrorIs(err, ErrInvalidKey)

	_, err = ParseSecretKey(make([]byte, 33))
	assert.ErrorIs(err, ErrInvalidKey)

	order, _ := FromHex(curveOrderHex)
	_, err = ParseSecretKey(order)
	assert.ErrorIs(err, ErrInvalidKey)

	order[SecretKeyLength-1]--
	sk, err = ParseSecretKey(order)
	assert.NoError(err)
	assert.Equal(order, sk.Bytes())
}

func Test_SecretKey_ParseHex(t *testing.T) {
	assert := assert.New(t)

	sk, err := ParseSecretKeyHex(strings.Repeat("00", 31) + "2a")
	assert.NoError(err)
	assert.Equal(scalarBytes(42), sk.Bytes())

	_, err = ParseSecretKeyHex("zz")
	assert.ErrorIs(err, ErrMalformedEncoding)

	_, err = ParseSecretKeyHex("abc")
	assert.ErrorIs(err, ErrMalformedEncoding)

	_, err = ParseSecretKeyHex(strings.Repeat("00", 32))
	assert.ErrorIs(err, ErrInvalidKey)
}

func Test_SecretKey_PublicKeyDeterministic(t *testing.T) {
	assert := assert.New(t)

	sk, err := GenerateSecretKey()
	assert.NoError(err)
	first := sk.PublicKey().Hex()
	for i := 0; i < 5; i++ {
		assert.Equal(first, sk.PublicKey().Hex())
	}

	one, _ := ParseSecretKey(scalarBytes(1))
	assert.Equal("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		one.PublicKey().Hex())
}

func Test_SecretKey_FromPassword(t *testing.T) {
	assert := assert.New(t)

	key, err := NewSecretKeyFromPassword([]byte("super secret spies"), []byte{0x11, 0x22, 0x33, 0x44})
	assert.NoError(err)
	again, err := NewSecretKeyFromPassword([]byte("super secret spies"), []byte{0x11, 0x22, 0x33, 0x44})
	assert.NoError(err)
	assert.True(key.Equal(again))

	other, err := NewSecretKeyFromPassword([]byte("super secret spies"), []byte{0x55})
	assert.NoError(err)
	assert.False(key.Equal(other))
}

func Test_SecretKey_Mnemonic(t *testing.T) {
	assert := assert.New(t)

	key, _ := ParseSecretKey(scalarBytes(123))
	mnemonic, err := key.Mnemonic()
	assert.NoError(err)
	assert.Len(strings.Fields(mnemonic), 24)

	key1, err := NewSecretKeyFromMnemonic(mnemonic)
	assert.NoError(err)
	assert.True(key.Equal(key1))

	_, err = NewSecretKeyFromMnemonic("foo bar baz")
	assert.ErrorIs(err, ErrInvalidKey)
}

func Test_SecretKey_Equal(t *testing.T) {
	assert := assert.New(t)

	a, _ := ParseSecretKey(scalarBytes(5))
	b, _ := ParseSecretKey(scalarBytes(5))
	c, _ := ParseSecretKey(scalarBytes(6))
	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
	assert.False(a.Equal(nil))
}

func Test_SecretKey_Zero(t *testing.T) {
	assert := assert.New(t)

	sk, _ := ParseSecretKey(scalarBytes(9))
	sk.Zero()
	assert.Equal(make([]byte, SecretKeyLength), sk.Bytes())

	var nilKey *SecretKey
	assert.NotPanics(func() { nilKey.Zero() })
}

func Test_SecretKey_ECDH(t *testing.T) {
	assert := assert.New(t)

	alice, err := GenerateSecretKey()
	assert.NoError(err)
	bob, err := GenerateSecretKey()
	assert.NoError(err)

	k1, err := alice.ECDH(bob.PublicKey())
	assert.NoError(err)
	k2, err := bob.ECDH(alice.PublicKey())
	assert.NoError(err)
	assert.Len(k1, 32)
	assert.Equal(k1, k2)

	_, err = alice.ECDH(nil)
	assert.ErrorIs(err, ErrInvalidKey)
}
