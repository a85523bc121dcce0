package sigs

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
)

// BucketName is where the user data is stored.
const BucketName = "sigs"

// maxSequenceValue is limited by the javascript clients, the greatest safe
// integer there is 2^53 - 1.
const maxSequenceValue = (1 << 53) - 1

// UserData is the authentication state of a single public key.
type UserData struct {
	Pubkey   *crypto.PublicKey `json:"pubkey"`
	Sequence int64             `json:"sequence"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Validate() error {
	var errs error
	if seq := u.Sequence; seq < 0 {
		errs = errors.AppendField(errs, "Sequence", ErrInvalidSequence)
	} else if seq > 0 && u.Pubkey == nil {
		errs = errors.Append(errs, errors.Field("Sequence", ErrInvalidSequence, "needs Pubkey"))
	}
	if u.Pubkey != nil {
		errs = errors.AppendField(errs, "Pubkey", u.Pubkey.Validate())
	}
	return errs
}

// CheckAndIncrementSequence increments the sequence if it is equal to the
// expected value. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

// Bucket stores user data under the address of the public key.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns the bucket of this extension.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &UserData{}),
	}
}

// GetOrCreate loads the user data of the key. A new, not yet stored entity
// is returned if none exists.
func (b Bucket) GetOrCreate(db quorum.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*UserData, error) {
	var user UserData
	switch err := b.One(db, pubkey.Address(), &user); {
	case err == nil:
		return &user, nil
	case errors.ErrNotFound.Is(err):
		return &UserData{Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// Save stores the user data under the address of its public key.
func (b Bucket) Save(db quorum.KVStore, u *UserData) error {
	if u.Pubkey == nil {
		return errors.Wrap(errors.ErrInvalidModel, "missing public key")
	}
	_, err := b.Put(db, u.Pubkey.Address(), u)
	return err
}
