package quorumtest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/quorum"
)

var condCounter uint64

// NewCondition returns a unique condition, for tests that do not need a
// private key.
func NewCondition() quorum.Condition {
	n := atomic.AddUint64(&condCounter, 1)
	return quorum.NewCondition("test", "cond", SequenceID(n))
}

// SequenceID returns the key the orm sequence produces for value n.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
