package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Common root errors are declared in this package, extensions declare their
// own. Attempt to reuse an error code results in panic, so call this function
// only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes keeps track of used codes to ensure their uniqueness.
var usedCodes = map[uint32]*Error{
	// Code 1 is reserved for errors that do not carry a code.
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Error represents a root error. Every error created during runtime should
// wrap one of them.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code that is used to represent this error in an ABCI
// response.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns a new error that has this error as the root cause.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(description, args...))
}

// Is returns true if given error instance is of this kind. Wrapped errors
// are unwrapped using their Cause method. Errors grouped by Append are tested
// one by one.
func (e *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with a wrapped
	// nil pointer.
	if e == nil {
		return isNilErr(err)
	}

	for {
		if err == e {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, child := range u.Unpack() {
				if e.Is(child) {
					return true
				}
			}
			return false
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide ABCICode method (ie. stdlib errors),
// it is categorized as an internal error.
//
// Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// Stack trace is attached only once, at the most inner wrap.
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf is Wrap with formatting capabilities.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the stack trace of the wrapped error when %+v is used.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover captures a panic and stops its propagation. The panic value is
// turned into an ErrPanic instance and assigned to given error. Call this
// function using defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType wraps an error with the type name of given object.
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found while unwrapping given
// error.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
