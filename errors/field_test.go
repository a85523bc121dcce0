package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	var (
		emptyOwnersErr    = Field("Owners", ErrEmpty, "at least one owner required")
		thresholdErr      = Field("Threshold", ErrInvalidInput, "too high")
		secondThreshold   = Field("Threshold", ErrOverflow, "")
		wrappedOwnersErr  = Wrap(emptyOwnersErr, "group")
		nestedMultiOwners = Field("Group", Append(emptyOwnersErr, ErrNotFound), "")
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"a single error found by the name": {
			err:   emptyOwnersErr,
			field: "Owners",
			want:  []error{emptyOwnersErr},
		},
		"two errors found by the name": {
			err:   Append(thresholdErr, emptyOwnersErr, secondThreshold),
			field: "Threshold",
			want:  []error{thresholdErr, secondThreshold},
		},
		"wrapped field error": {
			err:   wrappedOwnersErr,
			field: "Owners",
			want:  []error{emptyOwnersErr},
		},
		"nested field errors are found": {
			err:   nestedMultiOwners,
			field: "Owners",
			want:  []error{emptyOwnersErr},
		},
		"nil has no field errors": {
			err:   nil,
			field: "Owners",
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAppendField(t *testing.T) {
	var err error
	err = AppendField(err, "Owners", nil)
	if err != nil {
		t.Fatalf("nil field error must be ignored, got %v", err)
	}
	err = AppendField(err, "Threshold", ErrInvalidInput)
	if !ErrInvalidInput.Is(err) {
		t.Fatalf("want invalid input, got %v", err)
	}
	if n := len(FieldErrors(err, "Threshold")); n != 1 {
		t.Fatalf("want one threshold error, got %d", n)
	}
}
