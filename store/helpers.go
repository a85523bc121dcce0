package store

import "github.com/iov-one/quorum/errors"

// emptyKVStore holds no data and ignores writes. It is the parent of a
// MemStore.
type emptyKVStore struct{}

var _ KVStore = emptyKVStore{}

func (emptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

func (emptyKVStore) Has(key []byte) (bool, error) { return false, nil }

func (emptyKVStore) Set(key, value []byte) error { return nil }

func (emptyKVStore) Delete(key []byte) error { return nil }

func (emptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (emptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// ReadAll consumes the iterator and returns all models it yields.
func ReadAll(it Iterator) ([]Model, error) {
	defer it.Release()
	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Model{Key: key, Value: value})
	}
}

// PrefixEnd returns the end of a range that contains all keys with given
// prefix. It returns nil if there is no upper bound.
func PrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
