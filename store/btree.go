package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/quorum/errors"
)

// btreeDegree is the degree of every cache btree.
const btreeDegree = 2

// BTreeCacheWrap places a btree cache over a KVStore. All writes are kept in
// the btree until Write is called.
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent KVStore
}

var _ KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap initializes a btree cache around given store. The free
// list may be nil, pass an existing one to reuse it.
func NewBTreeCacheWrap(parent KVStore, free *btree.FreeList) *BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return &BTreeCacheWrap{
		bt:     btree.NewWithFreeList(btreeDegree, free),
		free:   free,
		parent: parent,
	}
}

// MemStore returns a store without persistence, useful for tests.
func MemStore() CacheableKVStore {
	return NewBTreeCacheWrap(emptyKVStore{}, nil)
}

// CacheWrap layers another btree on top of this one.
func (b *BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Write applies all cached operations to the parent store, in key order, and
// clears the cache.
func (b *BTreeCacheWrap) Write() error {
	var err error
	b.bt.Ascend(func(i btree.Item) bool {
		switch it := i.(type) {
		case setItem:
			err = b.parent.Set(it.key, it.value)
		case deletedItem:
			err = b.parent.Delete(it.key)
		}
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "cannot write cache")
	}
	b.Discard()
	return nil
}

// Discard drops all cached operations.
func (b *BTreeCacheWrap) Discard() {
	for b.bt.DeleteMin() != nil {
	}
}

// Set writes to the btree.
func (b *BTreeCacheWrap) Set(key, value []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "empty key")
	}
	b.bt.ReplaceOrInsert(setItem{bkey{key}, value})
	return nil
}

// Delete marks the key as deleted in the btree.
func (b *BTreeCacheWrap) Delete(key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "empty key")
	}
	b.bt.ReplaceOrInsert(deletedItem{bkey{key}})
	return nil
}

// Get reads from the btree if present, else from the parent store.
func (b *BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	switch it := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.parent.Get(key)
	case setItem:
		return it.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", it)
	}
}

// Has reads from the btree if present, else from the parent store.
func (b *BTreeCacheWrap) Has(key []byte) (bool, error) {
	switch it := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.parent.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", it)
	}
}

// Iterator combines the cached items with the parent store items, in
// ascending order.
func (b *BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(b.snapshot(start, end), parent, true), nil
}

// ReverseIterator combines the cached items with the parent store items, in
// descending order.
func (b *BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := b.parent.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	items := b.snapshot(start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return newMergeIterator(items, parent, false), nil
}

// snapshot returns all cached items of the range in ascending order, so that
// writes done while iterating do not affect the iteration.
func (b *BTreeCacheWrap) snapshot(start, end []byte) []btree.Item {
	var items []btree.Item
	collect := func(i btree.Item) bool {
		items = append(items, i)
		return true
	}
	switch {
	case start == nil && end == nil:
		b.bt.Ascend(collect)
	case start == nil:
		b.bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		b.bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		b.bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

type keyer interface {
	Key() []byte
}

// bkey implements btree.Item. It is used for lookups and embedded in the
// stored items.
type bkey struct {
	key []byte
}

func (k bkey) Key() []byte {
	return k.key
}

func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}
