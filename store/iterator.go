package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/quorum/errors"
)

// mergeIterator combines a snapshot of cached items with an iterator of the
// parent store. For keys present in both, the cached item wins.
type mergeIterator struct {
	items     []btree.Item
	parent    Iterator
	ascending bool

	// Parent lookahead.
	pkey, pvalue []byte
	ploaded      bool
	pdone        bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(items []btree.Item, parent Iterator, ascending bool) *mergeIterator {
	return &mergeIterator{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
}

func (m *mergeIterator) Next() ([]byte, []byte, error) {
	for {
		if !m.ploaded && !m.pdone {
			key, value, err := m.parent.Next()
			switch {
			case errors.ErrIteratorDone.Is(err):
				m.pdone = true
			case err != nil:
				return nil, nil, err
			default:
				m.pkey, m.pvalue, m.ploaded = key, value, true
			}
		}

		if len(m.items) == 0 {
			if !m.ploaded {
				return nil, nil, errors.ErrIteratorDone
			}
			m.ploaded = false
			return m.pkey, m.pvalue, nil
		}

		item := m.items[0]
		if m.ploaded {
			cmp := bytes.Compare(item.(keyer).Key(), m.pkey)
			if !m.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				m.ploaded = false
				return m.pkey, m.pvalue, nil
			}
			if cmp == 0 {
				// Cached value overwrites the parent.
				m.ploaded = false
			}
		}

		m.items = m.items[1:]
		if it, ok := item.(setItem); ok {
			return it.key, it.value, nil
		}
	}
}

func (m *mergeIterator) Release() {
	m.items = nil
	m.parent.Release()
}

// sliceIterator iterates over an already loaded list of models.
type sliceIterator struct {
	data []Model
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator returns an iterator over given models, in the given order.
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if len(s.data) == 0 {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[0]
	s.data = s.data[1:]
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}
