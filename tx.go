package quorum

import (
	"github.com/iov-one/quorum/errors"
)

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal. It is separated from
// Marshaller, as unmarshalling almost always requires a pointer.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is a request for a state transition. All authentication information
// is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the route of the message, used by the router to find
	// the handler. Paths are lower case, slash separated words, for
	// example "multisig/propose".
	Path() string

	// Validate performs all checks that do not require a store.
	Validate() error
}

// Tx is the data sent from the user to the chain. Every application defines
// its own transaction type that carries the message and whatever the
// application decorators require (signatures).
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if there is none.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message of the transaction into destination, which
// must be a pointer of the message type. The message is validated.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrInvalidMsg, "no message")
	}
	if err := assign(msg, destination); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
