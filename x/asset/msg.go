package asset

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	pathCreateAssetMsg    = "asset/create"
	pathAttachMetadataMsg = "asset/attach_metadata"
	pathMintMsg           = "asset/mint"
)

func validID(id []byte) error {
	if len(id) == 0 {
		return errors.ErrEmpty
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInvalidInput, "id must be 8 bytes, got %d", len(id))
	}
	return nil
}

// CreateAssetMsg registers a new asset. The authority must sign the
// transaction.
type CreateAssetMsg struct {
	Decimals  uint32         `json:"decimals"`
	Authority quorum.Address `json:"authority"`
}

var _ quorum.Msg = (*CreateAssetMsg)(nil)

func (CreateAssetMsg) Path() string {
	return pathCreateAssetMsg
}

func (m *CreateAssetMsg) Validate() error {
	var errs error
	if m.Decimals > MaxDecimals {
		errs = errors.Append(errs, errors.Field("Decimals", errors.ErrInvalidInput, "at most %d", MaxDecimals))
	}
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	return errs
}

// AttachMetadataMsg sets the descriptive information of an asset.
type AttachMetadataMsg struct {
	AssetID []byte `json:"asset_id"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Locator string `json:"locator"`
}

var _ quorum.Msg = (*AttachMetadataMsg)(nil)

func (AttachMetadataMsg) Path() string {
	return pathAttachMetadataMsg
}

func (m *AttachMetadataMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "AssetID", validID(m.AssetID))
	if m.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Name", validText(m.Name, maxNameLen))
	}
	if m.Symbol == "" {
		errs = errors.AppendField(errs, "Symbol", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Symbol", validText(m.Symbol, maxSymbolLen))
	}
	errs = errors.AppendField(errs, "Locator", validText(m.Locator, maxLocatorLen))
	return errs
}

// MintMsg creates new units of an asset in the holding of the destination.
type MintMsg struct {
	AssetID     []byte         `json:"asset_id"`
	Destination quorum.Address `json:"destination"`
	Amount      uint64         `json:"amount"`
}

var _ quorum.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "AssetID", validID(m.AssetID))
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount", errors.ErrInvalidAmount)
	}
	return errs
}
