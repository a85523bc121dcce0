package asset

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Initializer creates the assets and holdings declared in the "asset"
// section of the genesis file.
type Initializer struct{}

var _ quorum.Initializer = (*Initializer)(nil)

func (*Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	var genesis struct {
		Assets []struct {
			Decimals  uint32         `json:"decimals"`
			Authority quorum.Address `json:"authority"`
			Name      string         `json:"name"`
			Symbol    string         `json:"symbol"`
			Locator   string         `json:"locator"`
			Holdings  []struct {
				Owner  quorum.Address `json:"owner"`
				Amount uint64         `json:"amount"`
			} `json:"holdings"`
		} `json:"assets"`
	}
	if err := opts.ReadOptions("asset", &genesis); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	assets := NewAssetBucket()
	holdings := NewHoldingBucket()
	for i, a := range genesis.Assets {
		asset := Asset{
			Decimals:  a.Decimals,
			Authority: a.Authority,
			Name:      a.Name,
			Symbol:    a.Symbol,
			Locator:   a.Locator,
		}
		for _, h := range a.Holdings {
			if asset.Supply+h.Amount < asset.Supply {
				return errors.Wrapf(errors.ErrOverflow, "#%d asset supply", i)
			}
			asset.Supply += h.Amount
		}
		id, err := assets.Put(db, nil, &asset)
		if err != nil {
			return errors.Wrapf(err, "cannot save #%d asset", i)
		}
		for _, h := range a.Holdings {
			holding := Holding{AssetID: id, Owner: h.Owner, Amount: h.Amount}
			if _, err := holdings.Put(db, HoldingKey(id, h.Owner), &holding); err != nil {
				return errors.Wrapf(err, "cannot save #%d asset holding", i)
			}
		}
	}
	return nil
}
