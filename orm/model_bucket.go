package orm

import (
	"reflect"
	"regexp"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	quorum.Persistent
	Validate() error
}

// ModelBucket stores models of a single type.
type ModelBucket interface {
	// One loads the model stored under given primary key into dest. It
	// returns ErrNotFound if the entity does not exist.
	One(db quorum.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db quorum.ReadOnlyKVStore, key []byte) (bool, error)

	// Put validates and saves the model. If the key is nil, the next
	// sequence value is used. The key of the stored entity is returned.
	Put(db quorum.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key. It returns
	// ErrNotFound if the entity does not exist.
	Delete(db quorum.KVStore, key []byte) error

	// ByIndex loads all models indexed under the given value into dest,
	// which must be a pointer to a slice of models (*[]*MyModel). The
	// primary keys are returned in the same order.
	ByIndex(db quorum.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) ([][]byte, error)

	// Sequence returns the primary key sequence of this bucket.
	Sequence() Sequence

	// Register exposes the bucket and its indexes as queries:
	// "/<name>" and "/<name>/<index>".
	Register(name string, r quorum.QueryRouter)
}

// ModelBucketOption configures a bucket on creation.
type ModelBucketOption func(*modelBucket)

// WithIndex adds a secondary index to the bucket.
func WithIndex(name string, fn Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic("index " + name + " already registered")
		}
		mb.indexes[name] = newIndex(mb.name, name, fn, unique)
	}
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,12}$`).MatchString

// NewModelBucket returns a bucket storing models of the same type as the
// prototype, which must be a pointer.
func NewModelBucket(name string, prototype Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	tp := reflect.TypeOf(prototype)
	if tp.Kind() != reflect.Ptr {
		panic("model prototype must be a pointer")
	}
	mb := &modelBucket{
		name:    name,
		prefix:  []byte(name + ":"),
		model:   tp.Elem(),
		seq:     NewSequence(name, "id"),
		indexes: make(map[string]*index),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	name    string
	prefix  []byte
	model   reflect.Type
	seq     Sequence
	indexes map[string]*index
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) newModel() Model {
	return reflect.New(mb.model).Interface().(Model)
}

func (mb *modelBucket) One(db quorum.ReadOnlyKVStore, key []byte, dest Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if reflect.TypeOf(dest) != reflect.PtrTo(mb.model) {
		return errors.Wrapf(errors.ErrInvalidType, "%T cannot hold %s", dest, mb.model)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load entity")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrap(err, "cannot unmarshal")
	}
	return nil
}

func (mb *modelBucket) Has(db quorum.ReadOnlyKVStore, key []byte) (bool, error) {
	if len(key) == 0 {
		return false, errors.Wrap(errors.ErrEmpty, "key")
	}
	return db.Has(mb.dbKey(key))
}

func (mb *modelBucket) Put(db quorum.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != reflect.PtrTo(mb.model) {
		return nil, errors.Wrapf(errors.ErrInvalidType, "%T cannot be stored in %s bucket", m, mb.name)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	var prev Model
	if len(key) == 0 {
		var err error
		if key, err = mb.seq.NextVal(db); err != nil {
			return nil, errors.Wrap(err, "cannot acquire key")
		}
	} else if len(mb.indexes) > 0 {
		prev = mb.newModel()
		switch err := mb.One(db, key, prev); {
		case errors.ErrNotFound.Is(err):
			prev = nil
		case err != nil:
			return nil, err
		}
	}

	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, errors.Wrap(err, "cannot store entity")
	}
	for _, ix := range mb.indexes {
		if err := ix.update(db, key, prev, m); err != nil {
			return nil, err
		}
	}
	return key, nil
}

func (mb *modelBucket) Delete(db quorum.KVStore, key []byte) error {
	prev := mb.newModel()
	if err := mb.One(db, key, prev); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete entity")
	}
	for _, ix := range mb.indexes {
		if err := ix.update(db, key, prev, nil); err != nil {
			return err
		}
	}
	return nil
}

func (mb *modelBucket) ByIndex(db quorum.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) ([][]byte, error) {
	ix, ok := mb.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "no %q index in %s bucket", indexName, mb.name)
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.Elem().Kind() != reflect.Slice || dv.Elem().Type().Elem() != reflect.PtrTo(mb.model) {
		return nil, errors.Wrapf(errors.ErrInvalidType, "want *[]*%s, got %T", mb.model, dest)
	}
	keys, err := ix.keys(db, value)
	if err != nil {
		return nil, err
	}
	slice := dv.Elem()
	for _, key := range keys {
		m := mb.newModel()
		if err := mb.One(db, key, m); err != nil {
			return nil, errors.Wrapf(err, "index %q points to a missing entity", indexName)
		}
		slice = reflect.Append(slice, reflect.ValueOf(m))
	}
	dv.Elem().Set(slice)
	return keys, nil
}

func (mb *modelBucket) Sequence() Sequence {
	return mb.seq
}

func (mb *modelBucket) Register(name string, r quorum.QueryRouter) {
	r.Register("/"+name, bucketQuery{mb: mb})
	for ixName, ix := range mb.indexes {
		r.Register("/"+name+"/"+ixName, indexQuery{mb: mb, ix: ix})
	}
}

// bucketQuery returns entities by their primary key or primary key prefix.
type bucketQuery struct {
	mb *modelBucket
}

func (q bucketQuery) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	switch mod {
	case quorum.KeyQueryMod:
		raw, err := db.Get(q.mb.dbKey(data))
		if err != nil || raw == nil {
			return nil, err
		}
		return []quorum.Model{quorum.Pair(data, raw)}, nil
	case quorum.PrefixQueryMod:
		prefix := q.mb.dbKey(data)
		it, err := db.Iterator(prefix, store.PrefixEnd(prefix))
		if err != nil {
			return nil, err
		}
		models, err := store.ReadAll(it)
		if err != nil {
			return nil, err
		}
		for i := range models {
			models[i].Key = models[i].Key[len(q.mb.prefix):]
		}
		return models, nil
	default:
		return nil, errors.ErrInvalidInput.Newf("unknown query modifier %q", mod)
	}
}

// indexQuery returns all entities indexed under the given value.
type indexQuery struct {
	mb *modelBucket
	ix *index
}

func (q indexQuery) Query(db quorum.ReadOnlyKVStore, mod string, data []byte) ([]quorum.Model, error) {
	if mod != quorum.KeyQueryMod {
		return nil, errors.ErrInvalidInput.Newf("index query does not support %q modifier", mod)
	}
	keys, err := q.ix.keys(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]quorum.Model, 0, len(keys))
	for _, key := range keys {
		raw, err := db.Get(q.mb.dbKey(key))
		if err != nil {
			return nil, err
		}
		res = append(res, quorum.Pair(key, raw))
	}
	return res, nil
}
