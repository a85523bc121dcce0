package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"

	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/x/multisig"
)

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// mustReadTx reads a single transaction from the output of a command.
func mustReadTx(t testing.TB, r io.Reader) *app.Tx {
	t.Helper()
	tx, _, err := readTx(r)
	if err != nil {
		t.Fatalf("cannot read transaction: %s", err)
	}
	return tx
}

func TestTxStream(t *testing.T) {
	first := &app.Tx{Msg: &multisig.ApproveMsg{ProposalID: []byte("12345678")}}
	second := &app.Tx{Msg: &multisig.ApproveMsg{ProposalID: []byte("87654321")}}

	var buf bytes.Buffer
	if _, err := writeTx(&buf, first); err != nil {
		t.Fatalf("cannot write first: %s", err)
	}
	n, err := writeTx(&buf, second)
	if err != nil {
		t.Fatalf("cannot write second: %s", err)
	}

	got, _, err := readTx(&buf)
	assert.Nil(t, err)
	assert.Equal(t, first.Msg, got.Msg)

	got, read, err := readTx(&buf)
	assert.Nil(t, err)
	assert.Equal(t, second.Msg, got.Msg)
	assert.Equal(t, n, read)

	if _, _, err := readTx(&buf); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
}

func TestFmtSequence(t *testing.T) {
	got, err := fmtSequence([]byte{0, 0, 0, 0, 0, 0, 1, 0})
	assert.Nil(t, err)
	assert.Equal(t, "256", got)

	if _, err := fmtSequence([]byte{1}); err == nil {
		t.Fatal("want an error for a short sequence")
	}
}
