package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// NextNonce returns the sequence value that must be used by the next
// signature of the given signer address.
func NextNonce(db quorum.ReadOnlyKVStore, signer quorum.Address) (int64, error) {
	var user UserData
	switch err := NewBucket().One(db, signer, &user); {
	case err == nil:
		return user.Sequence, nil
	case errors.ErrNotFound.Is(err):
		// Counting starts with zero.
		return 0, nil
	default:
		return 0, errors.Wrap(err, "bucket")
	}
}
