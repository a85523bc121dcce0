package asset

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

const (
	// MaxDecimals is the greatest number of decimal places of an asset.
	MaxDecimals = 18

	maxNameLen    = 32
	maxSymbolLen  = 10
	maxLocatorLen = 200
)

// Asset describes a fungible asset. Metadata is empty until attached.
type Asset struct {
	Decimals  uint32         `json:"decimals"`
	Authority quorum.Address `json:"authority"`
	// Supply is the total amount minted so far.
	Supply  uint64 `json:"supply"`
	Name    string `json:"name,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
	Locator string `json:"locator,omitempty"`
}

var _ orm.Model = (*Asset)(nil)

func (a *Asset) Validate() error {
	var errs error
	if a.Decimals > MaxDecimals {
		errs = errors.Append(errs, errors.Field("Decimals", errors.ErrInvalidInput, "at most %d", MaxDecimals))
	}
	errs = errors.AppendField(errs, "Authority", a.Authority.Validate())
	errs = errors.AppendField(errs, "Name", validText(a.Name, maxNameLen))
	errs = errors.AppendField(errs, "Symbol", validText(a.Symbol, maxSymbolLen))
	errs = errors.AppendField(errs, "Locator", validText(a.Locator, maxLocatorLen))
	return errs
}

// HasMetadata returns true once metadata was attached.
func (a *Asset) HasMetadata() bool {
	return a.Name != "" || a.Symbol != ""
}

func validText(s string, max int) error {
	if n := len([]rune(s)); n > max {
		return errors.Wrapf(errors.ErrInvalidInput, "%d characters, at most %d allowed", n, max)
	}
	return nil
}

// Holding is the amount of an asset owned by an address.
type Holding struct {
	AssetID []byte         `json:"asset_id"`
	Owner   quorum.Address `json:"owner"`
	Amount  uint64         `json:"amount"`
}

var _ orm.Model = (*Holding)(nil)

func (h *Holding) Validate() error {
	var errs error
	if len(h.AssetID) != 8 {
		errs = errors.AppendField(errs, "AssetID", errors.ErrInvalidInput)
	}
	errs = errors.AppendField(errs, "Owner", h.Owner.Validate())
	return errs
}

// HoldingKey returns the primary key of the holding of an asset by owner.
func HoldingKey(assetID []byte, owner quorum.Address) []byte {
	return append(append([]byte{}, assetID...), owner...)
}

// NewAssetBucket returns the bucket storing assets.
func NewAssetBucket() orm.ModelBucket {
	return orm.NewModelBucket("asset", &Asset{})
}

// NewHoldingBucket returns the bucket storing holdings, indexed by owner.
func NewHoldingBucket() orm.ModelBucket {
	return orm.NewModelBucket("holding", &Holding{},
		orm.WithIndex("owner", holdingOwnerIndex, false))
}

func holdingOwnerIndex(m orm.Model) ([][]byte, error) {
	h, ok := m.(*Holding)
	if !ok {
		return nil, errors.WithType(errors.ErrInvalidModel, m)
	}
	return [][]byte{h.Owner}, nil
}
