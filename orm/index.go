package orm

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
)

// Indexer computes the index values of a model. A model can be indexed under
// many values, or none.
type Indexer func(Model) ([][]byte, error)

// index stores one entry per (index value, primary key) pair. The index
// value is length prefixed, so that a prefix scan returns exact matches only:
//
//	_i.<bucket>_<name>:<uint16 len><value><primary key>
type index struct {
	name   string
	prefix []byte
	fn     Indexer
	unique bool
}

func newIndex(bucket, name string, fn Indexer, unique bool) *index {
	return &index{
		name:   name,
		prefix: []byte("_i." + bucket + "_" + name + ":"),
		fn:     fn,
		unique: unique,
	}
}

func (ix *index) valuePrefix(value []byte) []byte {
	key := make([]byte, len(ix.prefix)+2, len(ix.prefix)+2+len(value))
	copy(key, ix.prefix)
	binary.BigEndian.PutUint16(key[len(ix.prefix):], uint16(len(value)))
	return append(key, value...)
}

func (ix *index) entryKey(value, primary []byte) []byte {
	return append(ix.valuePrefix(value), primary...)
}

// keys returns the primary keys of all models indexed under given value.
func (ix *index) keys(db quorum.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	prefix := ix.valuePrefix(value)
	it, err := db.Iterator(prefix, store.PrefixEnd(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate index")
	}
	entries, err := store.ReadAll(it)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read index")
	}
	keys := make([][]byte, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Value)
	}
	return keys, nil
}

// update removes the index entries of the previous model state and adds the
// entries of the next state. Any of the states can be nil.
func (ix *index) update(db quorum.KVStore, primary []byte, prev, next Model) error {
	prevVals, err := ix.values(prev)
	if err != nil {
		return err
	}
	nextVals, err := ix.values(next)
	if err != nil {
		return err
	}
	for _, v := range prevVals {
		if err := db.Delete(ix.entryKey(v, primary)); err != nil {
			return errors.Wrap(err, "cannot delete index entry")
		}
	}
	for _, v := range nextVals {
		if ix.unique {
			keys, err := ix.keys(db, v)
			if err != nil {
				return err
			}
			if len(keys) > 0 {
				return errors.Wrapf(errors.ErrDuplicate, "index %q", ix.name)
			}
		}
		if err := db.Set(ix.entryKey(v, primary), primary); err != nil {
			return errors.Wrap(err, "cannot store index entry")
		}
	}
	return nil
}

func (ix *index) values(m Model) ([][]byte, error) {
	if m == nil {
		return nil, nil
	}
	vals, err := ix.fn(m)
	if err != nil {
		return nil, errors.Wrapf(err, "index %q", ix.name)
	}
	for _, v := range vals {
		if len(v) > 0xffff {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "index %q value too long", ix.name)
		}
	}
	return vals, nil
}
