package sigs

import (
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// SignedTx represents a transaction that contains signatures, which can be
// verified by the Decorator.
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the
	// transaction without its signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures of everyone who signed.
	GetSignatures() []*StdSignature
}

// StdSignature is a signature of a transaction together with the public key
// and the sequence used to build the signed bytes.
type StdSignature struct {
	Pubkey    *crypto.PublicKey `json:"pubkey"`
	Signature *crypto.Signature `json:"signature"`
	Sequence  int64             `json:"sequence"`
}

// Validate ensures the StdSignature meets basic standards.
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
