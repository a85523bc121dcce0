package main

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/x/sigs"
)

func TestCmdSignOffline(t *testing.T) {
	keyPath, cleanup := tempKeyPath(t)
	defer cleanup()
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	key, err := decodePrivateKey(keyPath)
	assert.Nil(t, err)

	var unsigned bytes.Buffer
	if err := cmdApprove(nil, &unsigned, []string{"-proposal", "1"}); err != nil {
		t.Fatalf("cannot create transaction: %s", err)
	}

	var signed bytes.Buffer
	args := []string{"-key", keyPath, "-chain", "test-chain", "-seq", "3"}
	if err := cmdSignTransaction(&unsigned, &signed, args); err != nil {
		t.Fatalf("cannot sign: %s", err)
	}

	tx := mustReadTx(t, &signed)
	assert.Equal(t, 1, len(tx.Signatures))
	sig := tx.Signatures[0]
	assert.Equal(t, int64(3), sig.Sequence)
	assert.Equal(t, key.PublicKey(), sig.Pubkey)

	signBytes, err := sigs.BuildSignBytesTx(tx, "test-chain", 3)
	assert.Nil(t, err)
	if !sig.Pubkey.Verify(signBytes, sig.Signature) {
		t.Fatal("invalid signature")
	}
}
