package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Genesis is the part of the tendermint genesis file read by the
// application.
type Genesis struct {
	ChainID  string         `json:"chain_id"`
	AppState quorum.Options `json:"app_state"`
}

// LoadGenesis reads a genesis file.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot parse genesis file: %s", err)
	}
	return &gen, nil
}

// ChainInitializers lets you initialize many extensions with one function.
func ChainInitializers(inits ...quorum.Initializer) quorum.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []quorum.Initializer
}

// FromGenesis passes the options to all initializers in the list, aborting
// at the first error.
func (c chainInitializer) FromGenesis(opts quorum.Options, kv quorum.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
