package quorum

import (
	"encoding/json"
)

// Handler processes messages of one or more paths.
type Handler interface {
	Checker
	Deliverer
}

// Checker verifies that a transaction can be processed. It must not write
// anything meaningful to the store.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// authentication or logging to many handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is the setup side of a router.
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the application genesis options. Each extension looks up its
// key and parses the JSON as it needs.
type Options map[string]json.RawMessage

// ReadOptions parses the JSON stored under given key into obj. A missing key
// is not an error and leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer initializes an extension from the genesis file content.
type Initializer interface {
	FromGenesis(opts Options, store KVStore) error
}
