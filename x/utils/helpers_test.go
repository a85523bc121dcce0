package utils

import (
	"github.com/iov-one/quorum"
)

// writeHandler writes the key value pair and returns the error (may be nil).
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ quorum.Handler = writeHandler{}

func (h writeHandler) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &quorum.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &quorum.DeliverResult{}, nil
}

// panicHandler always panics.
type panicHandler struct {
	msg string
}

func (p panicHandler) Check(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.CheckResult, error) {
	panic(p.msg)
}

func (p panicHandler) Deliver(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.DeliverResult, error) {
	panic(p.msg)
}
