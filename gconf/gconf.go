package gconf

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// ReadStore is a subset of quorum.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of quorum.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by all extension configuration objects.
type Configuration interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Validate() error
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates the configuration and writes it for the package.
func Save(db Store, pkg string, src Configuration) error {
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: %s configuration", pkg)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: %s configuration", pkg)
	}
	return db.Set(key(pkg), raw)
}

// Load reads the configuration of the package into dst. It returns
// ErrNotFound if no configuration was saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(key(pkg))
	if err != nil {
		return errors.Wrapf(err, "load: %s configuration", pkg)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: %s configuration", pkg)
	}
	return nil
}

// InitConfig parses opts["conf"][pkg] into the given configuration,
// validates it and saves it. It returns ErrNotFound if the genesis does not
// declare a configuration for the package.
func InitConfig(db Store, opts quorum.Options, pkg string, conf Configuration) error {
	var confOptions quorum.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "read %s configuration: %s", pkg, err)
	}
	return Save(db, pkg, conf)
}
