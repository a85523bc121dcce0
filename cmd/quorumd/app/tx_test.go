package app

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSerialization(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	msg := &multisig.CreateGroupMsg{
		Owners:    []quorum.Address{key.PublicKey().Address()},
		Threshold: 1,
	}
	tx := &Tx{Msg: msg}
	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, "test-chain", 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signBytes)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)

	got, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
	assert.Len(t, decoded.(*Tx).GetSignatures(), 1)
}

func TestTxWithoutMsg(t *testing.T) {
	_, err := (&Tx{}).GetMsg()
	assert.True(t, errors.ErrInvalidMsg.Is(err))

	_, err = TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInvalidInput.Is(err))
}

func TestPayloadCodec(t *testing.T) {
	dest := crypto.GenPrivKeyEd25519().PublicKey().Address()
	msg := &asset.MintMsg{AssetID: []byte{0, 0, 0, 0, 0, 0, 0, 1}, Destination: dest, Amount: 7}

	raw, err := EncodeMsg(msg)
	require.NoError(t, err)
	got, err := DecodeMsg(raw)
	require.NoError(t, err)
	assert.Equal(t, quorum.Msg(msg), got)
	assert.Equal(t, "asset/mint", got.Path())

	_, err = DecodeMsg([]byte("garbage"))
	assert.True(t, errors.ErrInvalidMsg.Is(err))

	_, err = EncodeMsg(nil)
	assert.True(t, errors.ErrEmpty.Is(err))
}
