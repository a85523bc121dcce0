package orm

import (
	"encoding/binary"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Sequence maintains a counter and generates a series of keys. Each key is
// greater than the last, both as an integer and compared with bytes.Compare.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter stored under the key
//
//	_s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	return Sequence{id: []byte("_s." + bucket + ":" + name)}
}

// NextVal increments the sequence and returns its state as 8 bytes.
func (s Sequence) NextVal(db quorum.KVStore) ([]byte, error) {
	_, raw, err := s.increment(db, 1)
	return raw, err
}

// NextInt increments the sequence and returns its state as an integer.
func (s Sequence) NextInt(db quorum.KVStore) (uint64, error) {
	val, _, err := s.increment(db, 1)
	return val, err
}

// Curr returns the last value given by the sequence without modifying it.
func (s Sequence) Curr(db quorum.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return DecodeSequence(raw)
}

func (s Sequence) increment(db quorum.KVStore, inc uint64) (uint64, []byte, error) {
	val, err := s.Curr(db)
	if err != nil {
		return 0, nil, err
	}
	val += inc
	raw := EncodeSequence(val)
	if err := db.Set(s.id, raw); err != nil {
		return 0, nil, errors.Wrap(err, "cannot store sequence")
	}
	return val, raw, nil
}

// EncodeSequence returns the 8 byte big endian representation of a sequence
// value.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// DecodeSequence is the opposite of EncodeSequence. Nil is decoded as zero.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if len(bz) != 8 {
		return 0, errors.Wrapf(errors.ErrInvalidInput, "sequence must be 8 bytes, got %d", len(bz))
	}
	return binary.BigEndian.Uint64(bz), nil
}
