package client

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/sasha-s/go-deadlock"
)

// Querier is implemented by the Client and by any abci application.
type Querier interface {
	Query(RequestQuery) ResponseQuery
}

// Nonce queries the signature sequence of an address and caches it
// locally, so that many transactions can be signed quickly.
type Nonce struct {
	mu      deadlock.Mutex
	querier Querier
	addr    quorum.Address
	nonce   int64
	queried bool
}

// NewNonce creates a nonce for a querier and address pair.
func NewNonce(q Querier, addr quorum.Address) *Nonce {
	return &Nonce{querier: q, addr: addr}
}

// Query always asks the node for the next sequence value.
func (n *Nonce) Query() (int64, error) {
	resp, err := ParseQueryResponse(n.querier.Query(RequestQuery{
		Path: "/auth",
		Data: n.addr,
	}))
	if err != nil {
		return 0, errors.Wrap(err, "query user")
	}
	var seq int64
	if len(resp.Models) > 0 {
		var user sigs.UserData
		if err := user.Unmarshal(resp.Models[0].Value); err != nil {
			return 0, errors.Wrap(err, "user data")
		}
		seq = user.Sequence
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.nonce = seq
	n.queried = true
	return seq, nil
}

// Next returns the cached value incremented by one, assuming the last
// value was used to sign a transaction. The first call queries the node.
func (n *Nonce) Next() (int64, error) {
	n.mu.Lock()
	if !n.queried {
		n.mu.Unlock()
		return n.Query()
	}
	defer n.mu.Unlock()
	n.nonce++
	return n.nonce, nil
}
