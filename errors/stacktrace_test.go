package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTrace(t *testing.T) {
	cases := map[string]struct {
		err       error
		wantError string
	}{
		"New gives us a stacktrace": {
			err:       ErrDuplicate.New("name"),
			wantError: "name: duplicate",
		},
		"Wrapping stderr gives us a stacktrace": {
			err:       Wrap(fmt.Errorf("foo"), "standard"),
			wantError: "standard: foo",
		},
		"Wrapping twice keeps a single stacktrace": {
			err:       Wrap(Wrap(ErrEmpty, "inner"), "outer"),
			wantError: "outer: inner: value is empty",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantError, tc.err.Error())
			assert.NotNil(t, stackTrace(tc.err))

			full := fmt.Sprintf("%+v", tc.err)
			assert.True(t, strings.HasPrefix(full, tc.wantError), full)
			assert.Contains(t, full, "stacktrace_test.go")
		})
	}
}
