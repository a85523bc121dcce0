package errors

var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrInvalidMsg is returned whenever a message is invalid and cannot be
	// handled.
	ErrInvalidMsg = Register(4, "invalid message")

	// ErrInvalidModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrInvalidModel = Register(5, "invalid model")

	// ErrDuplicate is returned when a record with the same unique key
	// already exists.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman is returned when the application reaches a code path that
	// should never be reached.
	ErrHuman = Register(7, "coding error")

	// ErrCannotBeModified is returned when an immutable entity is modified.
	ErrCannotBeModified = Register(8, "cannot be modified")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	// ErrInvalidState is returned when an object is in invalid state.
	ErrInvalidState = Register(10, "invalid state")

	// ErrInvalidType is returned whenever the type is not what was expected.
	ErrInvalidType = Register(11, "invalid type")

	// ErrInvalidAmount stands for an invalid amount of whatever.
	ErrInvalidAmount = Register(13, "invalid amount")

	// ErrInvalidInput stands for general input problems.
	ErrInvalidInput = Register(14, "invalid input")

	// ErrOverflow is returned when a computation or a bounded collection
	// cannot hold the result.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(17, "database error")

	// ErrIteratorDone is returned by an iterator when there are no more
	// items to return.
	ErrIteratorDone = Register(18, "iterator done")

	// ErrNetwork is returned by a client when a node cannot be reached.
	ErrNetwork = Register(19, "network")

	// ErrTimeout is returned by a client when waiting for a result was
	// aborted.
	ErrTimeout = Register(20, "timeout")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)
