package asset

import (
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/x"
)

const (
	createAssetCost    int64 = 100
	attachMetadataCost int64 = 10
	mintCost           int64 = 10
)

// RegisterRoutes registers all handlers of this package.
func RegisterRoutes(r quorum.Registry, auth x.Authenticator) {
	assets := NewAssetBucket()
	r.Handle(pathCreateAssetMsg, createAssetHandler{auth: auth, assets: assets})
	r.Handle(pathAttachMetadataMsg, attachMetadataHandler{auth: auth, assets: assets})
	r.Handle(pathMintMsg, mintHandler{auth: auth, assets: assets, holdings: NewHoldingBucket()})
}

// RegisterQuery registers the buckets of this package as "/assets" and
// "/holdings".
func RegisterQuery(qr quorum.QueryRouter) {
	NewAssetBucket().Register("assets", qr)
	NewHoldingBucket().Register("holdings", qr)
}

type createAssetHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h createAssetHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: createAssetCost}, nil
}

func (h createAssetHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	asset := &Asset{Decimals: msg.Decimals, Authority: msg.Authority}
	id, err := h.assets.Put(db, nil, asset)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	return &quorum.DeliverResult{Data: id}, nil
}

func (h createAssetHandler) validate(ctx quorum.Context, tx quorum.Tx) (*CreateAssetMsg, error) {
	var msg CreateAssetMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "authority must sign")
	}
	return &msg, nil
}

type attachMetadataHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

func (h attachMetadataHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: attachMetadataCost}, nil
}

func (h attachMetadataHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, asset, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset.Name = msg.Name
	asset.Symbol = msg.Symbol
	asset.Locator = msg.Locator
	if _, err := h.assets.Put(db, msg.AssetID, asset); err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	return &quorum.DeliverResult{}, nil
}

func (h attachMetadataHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*AttachMetadataMsg, *Asset, error) {
	var msg AttachMetadataMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var asset Asset
	if err := h.assets.One(db, msg.AssetID, &asset); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load asset")
	}
	if !h.auth.HasAddress(ctx, asset.Authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority must sign")
	}
	if asset.HasMetadata() {
		return nil, nil, errors.Wrap(errors.ErrCannotBeModified, "metadata already attached")
	}
	return &msg, &asset, nil
}

type mintHandler struct {
	auth     x.Authenticator
	assets   orm.ModelBucket
	holdings orm.ModelBucket
}

func (h mintHandler) Check(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &quorum.CheckResult{GasAllocated: mintCost}, nil
}

func (h mintHandler) Deliver(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*quorum.DeliverResult, error) {
	msg, asset, holding, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset.Supply += msg.Amount
	holding.Amount += msg.Amount
	if _, err := h.assets.Put(db, msg.AssetID, asset); err != nil {
		return nil, errors.Wrap(err, "cannot store asset")
	}
	if _, err := h.holdings.Put(db, HoldingKey(msg.AssetID, msg.Destination), holding); err != nil {
		return nil, errors.Wrap(err, "cannot store holding")
	}
	return &quorum.DeliverResult{
		Log: fmt.Sprintf("minted %s", FormatAmount(msg.Amount, asset.Decimals)),
	}, nil
}

func (h mintHandler) validate(ctx quorum.Context, db quorum.KVStore, tx quorum.Tx) (*MintMsg, *Asset, *Holding, error) {
	var msg MintMsg
	if err := quorum.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var asset Asset
	if err := h.assets.One(db, msg.AssetID, &asset); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load asset")
	}
	if !h.auth.HasAddress(ctx, asset.Authority) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "authority must sign")
	}
	if !x.HasAccount(ctx, msg.Destination) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "destination %s is not a provided account", msg.Destination)
	}

	holding := Holding{AssetID: msg.AssetID, Owner: msg.Destination}
	switch err := h.holdings.One(db, HoldingKey(msg.AssetID, msg.Destination), &holding); {
	case err == nil, errors.ErrNotFound.Is(err):
	default:
		return nil, nil, nil, errors.Wrap(err, "cannot load holding")
	}
	if asset.Supply+msg.Amount < asset.Supply || holding.Amount+msg.Amount < holding.Amount {
		return nil, nil, nil, errors.Wrap(errors.ErrOverflow, "amount")
	}
	return &msg, &asset, &holding, nil
}
