package client

import (
	"fmt"

	"github.com/iov-one/quorum"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmtypes "github.com/tendermint/tendermint/types"
)

// TransactionID is the hash used to identify the transaction.
type TransactionID = cmn.HexBytes

// RequestQuery mirrors the abci query interface.
type RequestQuery = abci.RequestQuery

// ResponseQuery mirrors the abci query interface.
type ResponseQuery = abci.ResponseQuery

// TxQuery is a query to find transactions.
type TxQuery = string

// Header is a tendermint block header.
type Header = tmtypes.Header

// GenesisDoc is the full tendermint genesis file.
type GenesisDoc = tmtypes.GenesisDoc

// CommitResult is returned from the block (DeliverTx). Result is only set
// on success codes, Err is set if it was a failure code.
type CommitResult struct {
	ID     TransactionID
	Height int64
	// Tx is the raw transaction.
	Tx     []byte
	Result *quorum.DeliverResult
	Err    error
}

// Status is the current status of the node we connect to.
type Status struct {
	Height     int64
	CatchingUp bool
}

// AbciResponse contains a query result: a (possibly empty) list of key
// value pairs and the height at which it was queried.
type AbciResponse struct {
	Models []quorum.Model
	Height int64
}

type resultOrError struct {
	result *CommitResult
	err    error
}

// Option represents an option supplied to a subscription.
type Option interface {
	isOption()
}

// OptionCapacity sets the channel capacity of a subscription.
type OptionCapacity struct {
	Capacity int
}

func (OptionCapacity) isOption() {}

// QueryTxByID makes a subscription string based on the transaction id.
func QueryTxByID(id TransactionID) TxQuery {
	return fmt.Sprintf("%s='%X'", tmtypes.TxHashKey, id)
}

// QueryForHeader is a subscription query for all new headers.
func QueryForHeader() string {
	return fmt.Sprintf("%s='%s'", tmtypes.EventTypeKey, tmtypes.EventNewBlockHeader)
}

// QueryByTag returns a search query for transactions tagged with the value.
// The value is hex encoded, the way the handlers tag identifiers.
func QueryByTag(key string, value []byte) TxQuery {
	return fmt.Sprintf("%s='%X'", key, value)
}
