package store

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// RegisterQuery exposes the raw content of the store under the "/" path.
func RegisterQuery(qr quorum.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	switch mod {
	case quorum.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil || value == nil {
			return nil, err
		}
		return []quorum.Model{quorum.Pair(data, value)}, nil
	case quorum.PrefixQueryMod:
		it, err := db.Iterator(data, PrefixEnd(data))
		if err != nil {
			return nil, err
		}
		return ReadAll(it)
	default:
		return nil, errors.ErrInvalidInput.Newf("unknown query modifier %q", mod)
	}
}
