package easyecies

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	serializedKey5001 = "0357a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1"
	key5001X          = "57a4f368868a8a6d572991e484e664810ff14c05c0fa023275251151fe0e53d1"
	key5001Y          = "0d6cc87c5bc29b83368e17869e964f2f53d52ea3aa3e5a9efa1fa578123a0c6d"
)

func secretFromInt(v int64) *SecretKey {
	sk, err := ParseSecretKey(padWithZeros(big.NewInt(v).Bytes(), SecretKeyLength))
	if err != nil {
		panic(err)
	}
	return sk
}

func Test_PublicKey_SerializeCompressed(t *testing.T) {
	assert := assert.New(t)

	publicKey := secretFromInt(5001).PublicKey()
	assert.EqualValues(serializedKey5001, fmt.Sprintf("%x", publicKey.CompressedBytes()))
	assert.Len(publicKey.Bytes(), PublicKeyUncompressedLength)
	assert.EqualValues("04"+key5001X+key5001Y, fmt.Sprintf("%x", publicKey.Bytes()))
}

func Test_PublicKey_FromSerializedCompressed(t *testing.T) {
	assert := assert.New(t)

	publicKey, err := ParsePublicKeyHex(serializedKey5001)
	assert.NoError(err)
	assert.NotNil(publicKey)
	assert.EqualValues(key5001X, fmt.Sprintf("%064x", publicKey.X()))
	assert.EqualValues(key5001Y, fmt.Sprintf("%064x", publicKey.Y()))
	assert.True(publicKey.EqualSerializedCompressed(publicKey.CompressedBytes()))
}

func Test_PublicKey_FromUncompressed(t *testing.T) {
	assert := assert.New(t)

	expected := secretFromInt(5001).PublicKey()
	publicKey, err := ParsePublicKey(expected.Bytes())
	assert.NoError(err)
	assert.True(expected.Equal(publicKey))
	assert.EqualValues(serializedKey5001, publicKey.Hex())
}

func Test_PublicKey_ParseInvalid(t *testing.T) {
	assert := assert.New(t)

	valid := secretFromInt(5001).PublicKey()

	_, err := ParsePublicKey(nil)
	assert.ErrorIs(err, ErrInvalidKey)

	_, err = ParsePublicKey(valid.CompressedBytes()[:32])
	assert.ErrorIs(err, ErrInvalidKey)

	// Hybrid encoding is not accepted.
	hybrid := valid.Bytes()
	hybrid[0] = 0x07
	_, err = ParsePublicKey(hybrid)
	assert.ErrorIs(err, ErrInvalidKey)

	// Compressed prefix on a 65-byte buffer.
	mixed := valid.Bytes()
	mixed[0] = 0x02
	_, err = ParsePublicKey(mixed)
	assert.ErrorIs(err, ErrInvalidKey)

	offCurve := valid.Bytes()
	offCurve[PublicKeyUncompressedLength-1] ^= 0x01
	_, err = ParsePublicKey(offCurve)
	assert.ErrorIs(err, ErrInvalidKey)

	_, err = ParsePublicKeyHex("02zz")
	assert.ErrorIs(err, ErrMalformedEncoding)
}

func Test_PublicKey_Address(t *testing.T) {
	assert := assert.New(t)

	publicKey := secretFromInt(1).PublicKey()
	assert.Equal("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", publicKey.BitcoinAddress())
	assert.Equal("0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", publicKey.EthereumAddress())
}

func Test_PublicKey_Equal(t *testing.T) {
	assert := assert.New(t)

	a := secretFromInt(3).PublicKey()
	b := secretFromInt(3).PublicKey()
	c := secretFromInt(4).PublicKey()
	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
	assert.False(a.Equal(nil))
	assert.NotNil(a.ToECDSA())
}
