// Package bech32 converts raw payloads to and from the bech32 format, using
// 8 bit payload groups.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/quorum/errors"
)

// Decode returns the human readable part and the raw payload of given bech32
// representation.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return hrp, payload, nil
}

// Encode returns the bech32 representation of the payload.
func Encode(hrp string, payload []byte) (string, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	raw, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return raw, nil
}
