package quorum

import (
	"reflect"

	"github.com/iov-one/quorum/errors"
)

// assign sets src to the value dst points to, if their types are compatible.
func assign(src, dst interface{}) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Wrapf(errors.ErrHuman, "destination must be a non nil pointer, got %T", dst)
	}
	sv := reflect.ValueOf(src)
	switch target := dv.Elem(); {
	case sv.Type().AssignableTo(target.Type()):
		target.Set(sv)
	case sv.Kind() == reflect.Ptr && sv.Elem().Type().AssignableTo(target.Type()):
		target.Set(sv.Elem())
	default:
		return errors.Wrapf(errors.ErrInvalidType, "want %s, got %T", target.Type(), src)
	}
	return nil
}
