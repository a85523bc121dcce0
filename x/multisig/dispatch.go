package multisig

import (
	"bytes"
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// PayloadDecoder parses the payload of a proposal into a message.
type PayloadDecoder func(raw []byte) (quorum.Msg, error)

// Executor delivers a message on behalf of an executed proposal.
type Executor func(ctx quorum.Context, db quorum.KVStore, msg quorum.Msg) (*quorum.DeliverResult, error)

// HandlerAsExecutor wraps the message in a transaction to satisfy the
// Handler interface. A router or a decorated router can be used as an
// executor, as long as it does not need anything from the transaction but
// the message.
func HandlerAsExecutor(h quorum.Handler) Executor {
	return func(ctx quorum.Context, db quorum.KVStore, msg quorum.Msg) (*quorum.DeliverResult, error) {
		return h.Deliver(ctx, db, &proposalTx{msg: msg})
	}
}

type proposalTx struct {
	msg quorum.Msg
}

var _ quorum.Tx = (*proposalTx)(nil)

func (tx *proposalTx) GetMsg() (quorum.Msg, error) {
	return tx.msg, nil
}

func (tx *proposalTx) Marshal() ([]byte, error) {
	return tx.msg.Marshal()
}

func (tx *proposalTx) Unmarshal(raw []byte) error {
	return tx.msg.Unmarshal(raw)
}

type contextKey int

const (
	contextKeyExecuting contextKey = iota
)

// withExecuting marks the proposal as being executed by the call.
func withExecuting(ctx quorum.Context, proposalID []byte) quorum.Context {
	ids, _ := ctx.Value(contextKeyExecuting).([][]byte)
	next := make([][]byte, len(ids), len(ids)+1)
	copy(next, ids)
	return context.WithValue(ctx, contextKeyExecuting, append(next, proposalID))
}

// isExecuting returns true if the proposal execution is in progress up the
// call stack.
func isExecuting(ctx quorum.Context, proposalID []byte) bool {
	ids, _ := ctx.Value(contextKeyExecuting).([][]byte)
	for _, id := range ids {
		if bytes.Equal(id, proposalID) {
			return true
		}
	}
	return false
}

// decodeAction parses the payload and ensures it is a valid message of the
// target path.
func decodeAction(decode PayloadDecoder, p *Proposal) (quorum.Msg, error) {
	msg, err := decode(p.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, "empty payload message")
	}
	if msg.Path() != p.Target {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "payload is %q, target is %q", msg.Path(), p.Target)
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid payload message")
	}
	return msg, nil
}
