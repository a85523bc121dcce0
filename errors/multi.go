package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored. If only
// one non nil error is given, it is returned unchanged.
//
// The ABCI code of the result is the code of the first error.
func Append(errs ...error) error {
	var all []error
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(*multiErr); ok {
			all = append(all, m.errs...)
		} else {
			all = append(all, err)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return &multiErr{errs: all}
	}
}

type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m.errs), strings.Join(msgs, "; "))
}

// ABCICode returns the code of the first grouped error.
func (m *multiErr) ABCICode() uint32 {
	return abciCode(m.errs[0])
}

// Unpack returns all grouped errors.
func (m *multiErr) Unpack() []error {
	return m.errs
}

type unpacker interface {
	Unpack() []error
}
