package app

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterAmino(cdc)
}

// RegisterAmino registers the message interface and every message type
// this application routes.
func RegisterAmino(cdc *amino.Codec) {
	cdc.RegisterInterface((*quorum.Msg)(nil), nil)
	cdc.RegisterConcrete(&multisig.CreateGroupMsg{}, "multisig/create_group", nil)
	cdc.RegisterConcrete(&multisig.ProposeMsg{}, "multisig/propose", nil)
	cdc.RegisterConcrete(&multisig.ApproveMsg{}, "multisig/approve", nil)
	cdc.RegisterConcrete(&multisig.ExecuteMsg{}, "multisig/execute", nil)
	cdc.RegisterConcrete(&asset.CreateAssetMsg{}, "asset/create", nil)
	cdc.RegisterConcrete(&asset.AttachMetadataMsg{}, "asset/attach_metadata", nil)
	cdc.RegisterConcrete(&asset.MintMsg{}, "asset/mint", nil)
	cdc.RegisterConcrete(&sigs.BumpSequenceMsg{}, "sigs/bump_sequence", nil)
}

// EncodeMsg serializes a message together with its type, so that it can be
// used as a proposal payload.
func EncodeMsg(msg quorum.Msg) ([]byte, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	raw, err := cdc.MarshalBinaryBare(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, err.Error())
	}
	return raw, nil
}

// DecodeMsg is the inverse of EncodeMsg. It decodes proposal payloads.
func DecodeMsg(raw []byte) (quorum.Msg, error) {
	var msg quorum.Msg
	if err := cdc.UnmarshalBinaryBare(raw, &msg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidMsg, err.Error())
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	return msg, nil
}
