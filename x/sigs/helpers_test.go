package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/quorumtest"
)

// StdTx is a signed transaction carrying a mock message.
type StdTx struct {
	quorum.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &quorumtest.Msg{RoutePath: "test/sign", Serialized: payload}
	return &StdTx{Tx: &quorumtest.Tx{Msg: msg}}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// SigCheckHandler stores the seen signers on each call.
type SigCheckHandler struct {
	Signers []quorum.Condition
}

var _ quorum.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &quorum.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &quorum.DeliverResult{}, nil
}
