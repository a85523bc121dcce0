package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// Tx is the transaction of this application: a single message and the
// signatures authorizing it.
type Tx struct {
	Msg        quorum.Msg           `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

var (
	_ quorum.Tx     = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(raw []byte) (quorum.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(raw); err != nil {
		return nil, err
	}
	return tx, nil
}

func (tx *Tx) GetMsg() (quorum.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message")
	}
	return tx.Msg, nil
}

func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return raw, nil
}

func (tx *Tx) Unmarshal(raw []byte) error {
	if err := cdc.UnmarshalBinaryBare(raw, tx); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return nil
}
