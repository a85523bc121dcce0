package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/x/asset"
)

func TestCmdCreateAsset(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-authority", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-decimals", "6",
	}
	if err := cmdCreateAsset(nil, &output, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	msg := mustReadTx(t, &output).Msg.(*asset.CreateAssetMsg)
	assert.Equal(t, uint32(6), msg.Decimals)
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Authority))
}

func TestCmdAttachMetadata(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-asset", "1",
		"-name", "Gold",
		"-symbol", "GLD",
	}
	if err := cmdAttachMetadata(nil, &output, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	msg := mustReadTx(t, &output).Msg.(*asset.AttachMetadataMsg)
	assert.Equal(t, orm.EncodeSequence(1), msg.AssetID)
	assert.Equal(t, "Gold", msg.Name)
	assert.Equal(t, "GLD", msg.Symbol)
	assert.Equal(t, "", msg.Locator)
}

func TestCmdMintWithDecimals(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-asset", "1",
		"-to", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-amount", "12.5",
		"-decimals", "2",
	}
	if err := cmdMint(nil, &output, args); err != nil {
		t.Fatalf("cannot create a transaction: %s", err)
	}
	msg := mustReadTx(t, &output).Msg.(*asset.MintMsg)
	assert.Equal(t, uint64(1250), msg.Amount)
}
