package errors

import (
	"errors"
	"fmt"
)

const (
	// SuccessABCICode declares an ABCI response use 0 to signal that the
	// processing was successful and no error is returned.
	SuccessABCICode = 0

	// Errors that do not provide an ABCI code are reported under the
	// internal error code with a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the ABCI error information as consumed by the tendermint
// client. Errors that do not provide an ABCI code are categorized as internal
// and, unless running in debug mode, their message is replaced with a generic
// one.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}

	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode || ErrPanic.Is(err):
		return internalABCICode, internalABCILog
	default:
		return code, Redact(err, false).Error()
	}
}

// ABCIError returns an error instance for the given ABCI code and log, as
// received from a node. The result can be tested with the Is method of a
// registered error.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	if e, ok := usedCodes[code]; ok {
		return Wrap(e, log)
	}
	return Wrapf(usedCodes[internalABCICode], "code %d: %s", code, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the chain that provides
// one.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// Redact replaces all errors that do not carry an ABCI code with a generic
// internal error. Errors grouped by Append are redacted one by one. This is a
// no-operation function when running in debug mode.
func Redact(err error, debug bool) error {
	if debug || isNilErr(err) {
		return err
	}
	res, _ := redact(err)
	return res
}

// redact returns the redacted error and true if anything was replaced.
func redact(err error) (error, bool) {
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog), true
	}
	switch e := err.(type) {
	case *multiErr:
		var changed bool
		errs := make([]error, len(e.errs))
		for i, child := range e.errs {
			var ok bool
			errs[i], ok = redact(child)
			changed = changed || ok
		}
		if changed {
			return &multiErr{errs: errs}, true
		}
	case *wrappedError:
		if p, ok := redact(e.parent); ok {
			return &wrappedError{msg: e.msg, parent: p}, true
		}
	case causer:
		// Stack trace carriers are dropped together with the secret.
		if c, ok := redact(e.Cause()); ok {
			return c, true
		}
	}
	return err, false
}
