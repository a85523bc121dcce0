package server

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
)

// ValidateGenesis runs the initializer against each genesis file, using an
// in memory store, and returns the first failure.
func ValidateGenesis(ini quorum.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini quorum.Initializer, genesisPath string) error {
	gen, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}
	if err := ini.FromGenesis(gen.AppState, store.MemStore()); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
