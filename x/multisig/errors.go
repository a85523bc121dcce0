package multisig

import "github.com/iov-one/quorum/errors"

// multisig reserves codes 1030 ~ 1039
var (
	ErrInvalidThreshold   = errors.Register(1030, "invalid threshold")
	ErrAlreadyExecuted    = errors.Register(1031, "proposal already executed")
	ErrNotEnoughApprovals = errors.Register(1032, "not enough approvals")
	ErrGroupMismatch      = errors.Register(1033, "group mismatch")
	ErrDispatch           = errors.Register(1034, "dispatch failed")
	ErrInvalidOwners      = errors.Register(1035, "invalid owners")
)
