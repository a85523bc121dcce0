package quorumtest

import "github.com/iov-one/quorum"

// Handler is a mock counting its calls and returning configured results.
type Handler struct {
	checkCall   int
	CheckResult quorum.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult quorum.DeliverResult
	DeliverErr    error

	// OnDeliver if set is called on every deliver, before returning the
	// result. Use it to write to the store.
	OnDeliver func(quorum.Context, quorum.KVStore, quorum.Tx)
}

var _ quorum.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	h.deliverCall++
	if h.OnDeliver != nil {
		h.OnDeliver(ctx, db, tx)
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
