package asset

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func (a *Asset) Marshal() ([]byte, error)     { return cdc.MarshalBinaryBare(a) }
func (a *Asset) Unmarshal(raw []byte) error   { return cdc.UnmarshalBinaryBare(raw, a) }
func (h *Holding) Marshal() ([]byte, error)   { return cdc.MarshalBinaryBare(h) }
func (h *Holding) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, h) }

func (m *CreateAssetMsg) Marshal() ([]byte, error)      { return cdc.MarshalBinaryBare(m) }
func (m *CreateAssetMsg) Unmarshal(raw []byte) error    { return cdc.UnmarshalBinaryBare(raw, m) }
func (m *AttachMetadataMsg) Marshal() ([]byte, error)   { return cdc.MarshalBinaryBare(m) }
func (m *AttachMetadataMsg) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, m) }
func (m *MintMsg) Marshal() ([]byte, error)             { return cdc.MarshalBinaryBare(m) }
func (m *MintMsg) Unmarshal(raw []byte) error           { return cdc.UnmarshalBinaryBare(raw, m) }
