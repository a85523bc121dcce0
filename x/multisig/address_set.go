package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// AddressSet is an insertion ordered set of addresses that can hold at most
// Capacity elements.
type AddressSet struct {
	Addresses []quorum.Address `json:"addresses"`
	Capacity  uint32           `json:"capacity"`
}

// NewAddressSet returns an empty set that can hold up to capacity
// addresses.
func NewAddressSet(capacity int) AddressSet {
	return AddressSet{
		Addresses: make([]quorum.Address, 0, capacity),
		Capacity:  uint32(capacity),
	}
}

// Contains returns true if the address is an element of the set.
func (s AddressSet) Contains(a quorum.Address) bool {
	for _, e := range s.Addresses {
		if e.Equals(a) {
			return true
		}
	}
	return false
}

// Add appends the address unless already present. It fails with ErrOverflow
// if the set is full.
func (s *AddressSet) Add(a quorum.Address) error {
	if s.Contains(a) {
		return nil
	}
	if len(s.Addresses) >= int(s.Capacity) {
		return errors.Wrapf(errors.ErrOverflow, "set capacity %d", s.Capacity)
	}
	s.Addresses = append(s.Addresses, a)
	return nil
}

// Len returns the number of elements.
func (s AddressSet) Len() int {
	return len(s.Addresses)
}

func (s AddressSet) Validate() error {
	if len(s.Addresses) > int(s.Capacity) {
		return errors.Wrapf(errors.ErrOverflow, "%d elements, capacity %d", len(s.Addresses), s.Capacity)
	}
	for i, a := range s.Addresses {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "address %d", i)
		}
		for _, b := range s.Addresses[:i] {
			if a.Equals(b) {
				return errors.Wrapf(errors.ErrDuplicate, "address %s", a)
			}
		}
	}
	return nil
}
