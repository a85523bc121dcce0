package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

const (
	packageName = "multisig"

	// Configured limits cannot exceed these bounds.
	maxOwnersLimit     = 10
	maxPayloadLenLimit = 100
)

// Configuration holds the limits of this extension. It is stored on chain.
type Configuration struct {
	// MaxOwners is the greatest number of owners of a group.
	MaxOwners uint32 `json:"max_owners"`
	// MaxPayloadLen is the greatest size in bytes of a proposal payload.
	MaxPayloadLen uint32 `json:"max_payload_len"`
}

// DefaultConfiguration is used when no configuration was stored.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxOwners:     maxOwnersLimit,
		MaxPayloadLen: maxPayloadLenLimit,
	}
}

func (c *Configuration) Validate() error {
	var errs error
	switch {
	case c.MaxOwners == 0:
		errs = errors.AppendField(errs, "MaxOwners", errors.ErrEmpty)
	case c.MaxOwners > maxOwnersLimit:
		errs = errors.AppendField(errs, "MaxOwners",
			errors.Wrapf(errors.ErrInvalidInput, "at most %d", maxOwnersLimit))
	}
	switch {
	case c.MaxPayloadLen == 0:
		errs = errors.AppendField(errs, "MaxPayloadLen", errors.ErrEmpty)
	case c.MaxPayloadLen > maxPayloadLenLimit:
		errs = errors.AppendField(errs, "MaxPayloadLen",
			errors.Wrapf(errors.ErrInvalidInput, "at most %d", maxPayloadLenLimit))
	}
	return errs
}

func loadConf(db quorum.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, err
	}
}
