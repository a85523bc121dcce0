package sigs

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// Marshal serializes the user data.
func (u *UserData) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(u)
}

// Unmarshal deserializes the user data.
func (u *UserData) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, u)
}

// Marshal serializes the message.
func (m *BumpSequenceMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

// Unmarshal deserializes the message.
func (m *BumpSequenceMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
