package quorumtest

import "github.com/iov-one/quorum"

// Tx is a transaction carrying a single message.
type Tx struct {
	Msg quorum.Msg
	// Err if set is returned by GetMsg.
	Err error
}

var _ quorum.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (quorum.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg is a message with a configurable path.
type Msg struct {
	// RoutePath is returned by the Path method and used by the router.
	RoutePath string
	// Serialized is the serialized form of this message.
	Serialized []byte
	// Err if set is returned by every method call.
	Err error
}

var _ quorum.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
