package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/orm"
)

// writeTx serializes the transaction. The first bytes written contain the
// size of the transaction, so that transactions can be streamed.
func writeTx(w io.Writer, tx *app.Tx) (int, error) {
	b, err := tx.Marshal()
	if err != nil {
		return 0, err
	}

	var size [txHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))

	if n, err := w.Write(size[:]); err != nil {
		return n, err
	}
	if n, err := w.Write(b); err != nil {
		return n + txHeaderSize, err
	}
	return txHeaderSize + len(b), nil
}

func readTx(r io.Reader) (*app.Tx, int, error) {
	var size [txHeaderSize]byte
	if n, err := io.ReadFull(r, size[:]); err != nil {
		return nil, n, err
	}
	msgSize := binary.BigEndian.Uint32(size[:])
	raw := make([]byte, msgSize)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, n + txHeaderSize, err
	}

	var tx app.Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, int(msgSize + txHeaderSize), err
	}
	return &tx, int(msgSize + txHeaderSize), nil
}

const txHeaderSize = 4

// fmtSequence prints a sequence ID in its decimal form.
func fmtSequence(raw []byte) (string, error) {
	n, err := orm.DecodeSequence(raw)
	if err != nil {
		return "", fmt.Errorf("cannot parse sequence: %s", err)
	}
	return fmt.Sprint(n), nil
}

// flagDie terminates the program when an invalid flag value was provided.
func flagDie(description string, args ...interface{}) {
	msg := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
