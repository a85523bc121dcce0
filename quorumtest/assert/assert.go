// Package assert provides the minimal set of test assertions used across
// the quorum packages.
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/quorum/errors"
)

// Tester is the minimal subset of testing.TB needed by most assertions.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v shows the stack trace of errors that carry one.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()
	// IsNil panics for values that cannot be nil.
	return reflect.ValueOf(value).IsNil()
}

// Equal fails the test if two values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test if given function call does not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test if got is not an instance of the wanted error.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %q error, got %+v", want, got)
	}
}

// FieldError ensures that given error contains exactly one error for the
// field and that it is of the wanted kind. Use nil to test that no error was
// reported for the field.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, fieldName)
	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("want no %q field error, got %v", fieldName, errs)
		}
		return
	}
	switch len(errs) {
	case 0:
		t.Fatalf("no %q field error found in %v", fieldName, err)
	case 1:
		if !want.Is(errs[0]) {
			t.Fatalf("unexpected %q field error: %q", fieldName, errs[0])
		}
	default:
		t.Fatalf("want one %q field error, got %d: %v", fieldName, len(errs), errs)
	}
}
