package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

// Initializer loads the configuration and the groups declared in the
// genesis file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

// FromGenesis stores the "multisig" configuration of the "conf" section,
// or the default one, and creates every group of the "multisig" section.
func (*Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(db, opts, packageName, &conf); {
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
		if err := gconf.Save(db, packageName, &conf); err != nil {
			return err
		}
	case err != nil:
		return errors.Wrap(err, "init config")
	}

	var genesis struct {
		Groups []struct {
			Owners    []quorum.Address `json:"owners"`
			Threshold uint32           `json:"threshold"`
		} `json:"groups"`
	}
	if err := opts.ReadOptions("multisig", &genesis); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	groups := NewGroupBucket()
	for i, g := range genesis.Groups {
		group := Group{Owners: g.Owners, Threshold: g.Threshold}
		if n := len(group.Owners); n > int(conf.MaxOwners) {
			return errors.Wrapf(ErrInvalidThreshold, "#%d group: %d owners, at most %d allowed", i, n, conf.MaxOwners)
		}
		if _, err := groups.Put(db, nil, &group); err != nil {
			return errors.Wrapf(err, "cannot save #%d group", i)
		}
	}
	return nil
}
