package sigs

import (
	"testing"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignBytes(t *testing.T) {
	a, err := BuildSignBytes([]byte("foo"), "my-chain", 0)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := BuildSignBytes([]byte("foo"), "my-chain", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := BuildSignBytes([]byte("foo"), "your-chain", 0)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = BuildSignBytes([]byte("foo"), "my-chain", -1)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = BuildSignBytes([]byte("foo"), "x", 0)
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	chainID := "test-chain"
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	bz := []byte("my special valentine")

	tx := NewStdTx(bz)
	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	empty := &StdSignature{Pubkey: pub, Sequence: 0}
	_, err = VerifySignature(kv, empty, bz, chainID, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong chain
	_, err = VerifySignature(kv, sig0, bz, "other-chain", nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong sequence
	_, err = VerifySignature(kv, sig1, bz, chainID, nil)
	assert.True(t, ErrInvalidSequence.Is(err))

	cond, err := VerifySignature(kv, sig0, bz, chainID, nil)
	require.NoError(t, err)
	assert.Equal(t, pub.Condition(), cond)

	nonce, err := NextNonce(kv, pub.Address())
	require.NoError(t, err)
	assert.EqualValues(t, 1, nonce)

	// replay
	_, err = VerifySignature(kv, sig0, bz, chainID, nil)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = VerifySignature(kv, sig1, bz, chainID, nil)
	require.NoError(t, err)
	nonce, err = NextNonce(kv, pub.Address())
	require.NoError(t, err)
	assert.EqualValues(t, 2, nonce)
}

func TestVerifyTxSignatures(t *testing.T) {
	chainID := "tx-sig-chain"
	kv := store.MemStore()
	a := crypto.GenPrivKeyEd25519()
	b := crypto.GenPrivKeyEd25519()

	tx := NewStdTx([]byte("payload"))
	sigA, err := SignTx(a, tx, chainID, 0)
	require.NoError(t, err)
	sigB, err := SignTx(b, tx, chainID, 0)
	require.NoError(t, err)

	other := NewStdTx([]byte("other payload"))
	badB, err := SignTx(b, other, chainID, 0)
	require.NoError(t, err)

	tx.Signatures = []*StdSignature{sigA, badB}
	_, err = VerifyTxSignatures(kv.CacheWrap(), tx, chainID, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	tx.Signatures = []*StdSignature{sigA, sigB}
	conds, err := VerifyTxSignatures(kv, tx, chainID, NewVerifier(10))
	require.NoError(t, err)
	require.Len(t, conds, 2)
	assert.Equal(t, a.PublicKey().Condition(), conds[0])
	assert.Equal(t, b.PublicKey().Condition(), conds[1])
}

func TestVerifierCache(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	msg := []byte("cached")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	v := NewVerifier(2)
	assert.True(t, v.Verify(priv.PublicKey(), msg, sig))
	assert.Equal(t, 1, v.cache.Len())
	assert.True(t, v.Verify(priv.PublicKey(), msg, sig))
	assert.Equal(t, 1, v.cache.Len())

	assert.False(t, v.Verify(priv.PublicKey(), []byte("other"), sig))
	assert.Equal(t, 1, v.cache.Len())

	var nilVerifier *Verifier
	assert.True(t, nilVerifier.Verify(priv.PublicKey(), msg, sig))
}
