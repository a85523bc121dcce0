package quorum

import (
	"fmt"

	"github.com/iov-one/quorum/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult captures a successful deliver result.
type DeliverResult struct {
	// Data is a machine parseable return value, like the ID of a created
	// entity.
	Data []byte
	// Log is a human readable informational string.
	Log string
	// Tags are used by tendermint to index and search the transaction
	// history.
	Tags []common.KVPair
	// GasUsed is not metered yet.
	GasUsed int64
}

// ToABCI converts the result into an abci response.
func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// CheckResult captures a successful check result.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum units of work this tx may perform.
	GasAllocated int64
}

// ToABCI converts the result into an abci response.
func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverOrError returns an abci response for DeliverTx, converting the
// error if present.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns an abci response for CheckTx, converting the error if
// present.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// ParseDeliverOrError is the inverse of DeliverOrError.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return &DeliverResult{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}, nil
}

// DeliverTxError converts any error into an abci.ResponseDeliverTx.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseDeliverTx{
		Code: code,
		Log:  fmt.Sprintf("cannot deliver tx: %s", log),
	}
}

// CheckTxError converts any error into an abci.ResponseCheckTx.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseCheckTx{
		Code: code,
		Log:  fmt.Sprintf("cannot check tx: %s", log),
	}
}

// Tag builds an indexing tag of a deliver result.
func Tag(key string, value []byte) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: value}
}
