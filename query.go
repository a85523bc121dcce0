package quorum

import (
	"fmt"
	"strings"

	"github.com/iov-one/quorum/errors"
)

const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model groups together key and value of a query result.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair constructs a model from a key value pair.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler is anything that can process ABCI queries.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister is a function that adds handlers to a router.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches queries to handlers registered for a path.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter initializes a QueryRouter with no routes.
func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler, 10),
	}
}

// RegisterAll registers a number of QueryRegister at once.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a new handler for the given path. It panics if the path is
// already taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// ParseQueryPath splits a query path into the route and the modifier, for
// example "/groups?prefix".
func ParseQueryPath(raw string) (path, mod string, err error) {
	chunks := strings.SplitN(raw, "?", 2)
	path = chunks[0]
	if len(chunks) == 2 {
		mod = chunks[1]
	}
	switch mod {
	case KeyQueryMod, PrefixQueryMod:
		return path, mod, nil
	default:
		return "", "", errors.ErrInvalidInput.Newf("unknown query modifier %q", mod)
	}
}
