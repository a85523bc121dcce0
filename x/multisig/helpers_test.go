package multisig

import (
	"context"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/store"
)

const targetPath = "test/target"

type testRouter map[string]quorum.Handler

func (r testRouter) Handle(path string, h quorum.Handler) {
	r[path] = h
}

// decodeTestMsg decodes every payload into a message of targetPath. The
// payload "invalid" produces a message that fails validation.
func decodeTestMsg(raw []byte) (quorum.Msg, error) {
	msg := &quorumtest.Msg{RoutePath: targetPath, Serialized: raw}
	if string(raw) == "invalid" {
		msg.Err = errors.ErrInvalidMsg.New("invalid payload")
	}
	return msg, nil
}

// fixture holds the store and the handlers of a single test.
type fixture struct {
	db       quorum.CacheableKVStore
	auth     *quorumtest.CtxAuth
	handlers testRouter
	// target is delivered by executed proposals, unless exec is replaced.
	target *quorumtest.Handler
	exec   Executor
}

func newFixture() *fixture {
	f := &fixture{
		db:       store.MemStore(),
		auth:     &quorumtest.CtxAuth{Key: "auth"},
		handlers: make(testRouter),
		target:   &quorumtest.Handler{},
	}
	f.exec = HandlerAsExecutor(f.target)
	// Indirection, so that tests can replace the executor.
	exec := func(ctx quorum.Context, db quorum.KVStore, msg quorum.Msg) (*quorum.DeliverResult, error) {
		return f.exec(ctx, db, msg)
	}
	RegisterRoutes(f.handlers, f.auth, decodeTestMsg, exec)
	return f
}

func (f *fixture) ctx(signers ...quorum.Condition) quorum.Context {
	return f.auth.SetConditions(context.Background(), signers...)
}

func (f *fixture) deliver(msg quorum.Msg, signers ...quorum.Condition) (*quorum.DeliverResult, error) {
	return f.handlers[msg.Path()].Deliver(f.ctx(signers...), f.db, &quorumtest.Tx{Msg: msg})
}

func (f *fixture) check(msg quorum.Msg, signers ...quorum.Condition) (*quorum.CheckResult, error) {
	return f.handlers[msg.Path()].Check(f.ctx(signers...), f.db, &quorumtest.Tx{Msg: msg})
}

func (f *fixture) createGroup(t testing.TB, threshold uint32, owners ...quorum.Condition) []byte {
	t.Helper()
	addrs := make([]quorum.Address, len(owners))
	for i, o := range owners {
		addrs[i] = o.Address()
	}
	res, err := f.deliver(&CreateGroupMsg{Owners: addrs, Threshold: threshold}, quorumtest.NewCondition())
	if err != nil {
		t.Fatalf("cannot create group: %+v", err)
	}
	return res.Data
}

func (f *fixture) propose(t testing.TB, groupID []byte, proposer quorum.Condition) []byte {
	t.Helper()
	msg := &ProposeMsg{GroupID: groupID, Target: targetPath, Payload: []byte("action")}
	res, err := f.deliver(msg, proposer)
	if err != nil {
		t.Fatalf("cannot propose: %+v", err)
	}
	return res.Data
}

func (f *fixture) proposal(t testing.TB, id []byte) *Proposal {
	t.Helper()
	var p Proposal
	if err := NewProposalBucket().One(f.db, id, &p); err != nil {
		t.Fatalf("cannot load proposal: %+v", err)
	}
	return &p
}

func addresses(conds ...quorum.Condition) []quorum.Address {
	res := make([]quorum.Address, len(conds))
	for i, c := range conds {
		res[i] = c.Address()
	}
	return res
}
