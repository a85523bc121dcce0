package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()
	require.NoError(t, pub.Validate())

	msg := []byte("approve proposal 1")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("approve proposal 2"), sig))

	other := GenPrivKeyEd25519().PublicKey()
	assert.False(t, other.Verify(msg, sig))
	assert.False(t, pub.Verify(msg, nil))
}

func TestConditionAndAddress(t *testing.T) {
	seed := make([]byte, 32)
	a := PrivKeyEd25519FromSeed(seed).PublicKey()
	b := PrivKeyEd25519FromSeed(seed).PublicKey()

	assert.Equal(t, a.Condition(), b.Condition())
	assert.Equal(t, a.Address(), b.Address())
	require.NoError(t, a.Condition().Validate())

	ext, typ, data, err := a.Condition().Parse()
	require.NoError(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, a.Ed25519, data)
	assert.NotEmpty(t, a.Base58())
}

func TestDerivePrivKey(t *testing.T) {
	// SLIP-0010 ed25519 test vector 1.
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	priv, err := DerivePrivKeyEd25519(seed, "m/0'")
	require.NoError(t, err)
	assert.Equal(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3",
		hex.EncodeToString(priv.Ed25519[:32]))

	_, err = DerivePrivKeyEd25519(seed, "m/0")
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestInvalidPrivateKey(t *testing.T) {
	_, err := (&PrivateKey{Ed25519: []byte{1, 2, 3}}).Sign([]byte("x"))
	assert.True(t, errors.ErrInvalidInput.Is(err))
}
