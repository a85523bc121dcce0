package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// isPath is the format of message paths, for example "multisig/propose".
var isPath = regexp.MustCompile(`^[a-z][a-z0-9_]*(/[a-z][a-z0-9_]*)*$`).MatchString

// Router dispatches transactions to the handler registered for the path of
// their message.
type Router struct {
	routes map[string]quorum.Handler
}

var (
	_ quorum.Registry = (*Router)(nil)
	_ quorum.Handler  = (*Router)(nil)
)

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{routes: make(map[string]quorum.Handler)}
}

// Handle registers a handler for the path. It panics if the path is not
// valid or already registered.
func (r *Router) Handle(path string, h quorum.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path. Unknown paths are
// served by a handler that always fails with ErrNotFound.
func (r *Router) Handler(path string) quorum.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the handler of the message path.
func (r *Router) Check(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the handler of the message path.
func (r *Router) Deliver(ctx quorum.Context, store quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

type notFoundHandler string

func (path notFoundHandler) Check(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(quorum.Context, quorum.KVStore, quorum.Tx) (*quorum.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
