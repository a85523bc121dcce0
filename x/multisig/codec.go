package multisig

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func (g *Group) Marshal() ([]byte, error)         { return cdc.MarshalBinaryBare(g) }
func (g *Group) Unmarshal(raw []byte) error       { return cdc.UnmarshalBinaryBare(raw, g) }
func (p *Proposal) Marshal() ([]byte, error)      { return cdc.MarshalBinaryBare(p) }
func (p *Proposal) Unmarshal(raw []byte) error    { return cdc.UnmarshalBinaryBare(raw, p) }
func (c *Configuration) Marshal() ([]byte, error) { return cdc.MarshalBinaryBare(c) }
func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (m *CreateGroupMsg) Marshal() ([]byte, error)   { return cdc.MarshalBinaryBare(m) }
func (m *CreateGroupMsg) Unmarshal(raw []byte) error { return cdc.UnmarshalBinaryBare(raw, m) }
func (m *ProposeMsg) Marshal() ([]byte, error)       { return cdc.MarshalBinaryBare(m) }
func (m *ProposeMsg) Unmarshal(raw []byte) error     { return cdc.UnmarshalBinaryBare(raw, m) }
func (m *ApproveMsg) Marshal() ([]byte, error)       { return cdc.MarshalBinaryBare(m) }
func (m *ApproveMsg) Unmarshal(raw []byte) error     { return cdc.UnmarshalBinaryBare(raw, m) }
func (m *ExecuteMsg) Marshal() ([]byte, error)       { return cdc.MarshalBinaryBare(m) }
func (m *ExecuteMsg) Unmarshal(raw []byte) error     { return cdc.UnmarshalBinaryBare(raw, m) }
