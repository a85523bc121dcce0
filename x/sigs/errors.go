package sigs

import "github.com/iov-one/quorum/errors"

// ErrInvalidSequence is returned when a signature sequence does not match
// the one stored for the signing key.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
