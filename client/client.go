package client

import (
	"context"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	tmquery "github.com/tendermint/tendermint/libs/pubsub/query"
	nm "github.com/tendermint/tendermint/node"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

const txPerPage = 50

// Client is a tendermint client wrapped to provide simple access to the
// data structures of a quorum node.
type Client struct {
	conn rpcclient.Client
}

// NewClient wraps an existing tendermint client connection.
func NewClient(conn rpcclient.Client) *Client {
	return &Client{conn: conn}
}

// NewHTTPClient connects to a remote node, for example
// "http://localhost:26657".
func NewHTTPClient(remote string) *Client {
	return NewClient(rpcclient.NewHTTP(remote, "/websocket"))
}

// NewLocalClient connects to an in-process node, useful for tests.
func NewLocalClient(node *nm.Node) *Client {
	return NewClient(rpcclient.NewLocal(node))
}

// Status returns the current height and catching up status of the node.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	status, err := c.conn.Status()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "status: %s", err)
	}
	return &Status{
		Height:     status.SyncInfo.LatestBlockHeight,
		CatchingUp: status.SyncInfo.CatchingUp,
	}, nil
}

// Genesis returns the genesis document of the chain.
func (c *Client) Genesis(ctx context.Context) (*GenesisDoc, error) {
	gen, err := c.conn.Genesis()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "genesis: %s", err)
	}
	return gen.Genesis, nil
}

// ChainID returns the chain ID declared by the genesis document.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	gen, err := c.Genesis(ctx)
	if err != nil {
		return "", err
	}
	return gen.ChainID, nil
}

// Header returns the block header at the given height. It fails if no
// header exists yet for that height.
func (c *Client) Header(ctx context.Context, height int64) (*Header, error) {
	info, err := c.conn.BlockchainInfo(height, height)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "blockchain info: %s", err)
	}
	if len(info.BlockMetas) == 0 {
		return nil, errors.Wrapf(errors.ErrNotFound, "no headers for height %d", height)
	}
	return &info.BlockMetas[0].Header, nil
}

// SubmitTx submits the tx to the mempool and returns once it passed the
// check. Use WatchTx to get the delivery result.
func (c *Client) SubmitTx(ctx context.Context, tx quorum.Tx) (TransactionID, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal tx")
	}
	res, err := c.conn.BroadcastTxSync(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "submit tx: %s", err)
	}
	// A check error means the transaction will never make it into a block.
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	return res.Hash, nil
}

// Query mirrors the abci query interface. Network errors are reported with
// the ErrNetwork code.
func (c *Client) Query(query RequestQuery) ResponseQuery {
	opts := rpcclient.ABCIQueryOptions{Height: query.Height, Prove: query.Prove}
	res, err := c.conn.ABCIQueryWithOptions(query.Path, query.Data, opts)
	if err != nil {
		code, log := errors.ABCIInfo(errors.Wrap(errors.ErrNetwork, err.Error()), false)
		return ResponseQuery{Code: code, Log: log}
	}
	return res.Response
}

// AbciQuery queries the application state and parses the result sets of
// the response.
func (c *Client) AbciQuery(path string, data []byte) (*AbciResponse, error) {
	return ParseQueryResponse(c.Query(RequestQuery{Path: path, Data: data}))
}

// ParseQueryResponse converts a query response into models. An error
// response is converted into the registered error of its code.
func ParseQueryResponse(resp ResponseQuery) (*AbciResponse, error) {
	if resp.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}
	out := &AbciResponse{Height: resp.Height}
	if len(resp.Key) == 0 {
		return out, nil
	}
	var keys, values app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := values.Unmarshal(resp.Value); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	models, err := app.JoinResults(&keys, &values)
	if err != nil {
		return nil, err
	}
	out.Models = models
	return out, nil
}

// GetTxByID returns the result of a committed transaction.
func (c *Client) GetTxByID(ctx context.Context, id TransactionID) (*CommitResult, error) {
	tx, err := c.conn.Tx(id, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "get tx: %s", err)
	}
	return resultTxToCommitResult(tx), nil
}

// SearchTx returns the first page of committed transactions matching the
// query.
func (c *Client) SearchTx(ctx context.Context, query TxQuery) ([]*CommitResult, error) {
	search, err := c.conn.TxSearch(query, false, 1, txPerPage)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "search tx: %s", err)
	}
	results := make([]*CommitResult, len(search.Txs))
	for i, tx := range search.Txs {
		results[i] = resultTxToCommitResult(tx)
	}
	return results, nil
}

// SubscribeHeaders fills the channel with all new headers until the
// context is cancelled. The channel is closed afterwards.
func (c *Client) SubscribeHeaders(ctx context.Context, results chan<- Header, options ...Option) error {
	data, err := c.subscribe(ctx, QueryForHeader(), options...)
	if err != nil {
		return err
	}

	go func(in <-chan ctypes.ResultEvent) {
		defer close(results)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				if val, ok := msg.Data.(tmtypes.EventDataNewBlockHeader); ok {
					results <- val.Header
				}
			}
		}
	}(data)
	return nil
}

// SubscribeTx writes all transactions that match a query to the results
// channel as they arrive, until the context is cancelled.
func (c *Client) SubscribeTx(ctx context.Context, query TxQuery, results chan<- CommitResult, options ...Option) error {
	q := fmt.Sprintf("%s='%s' AND %s", tmtypes.EventTypeKey, tmtypes.EventTx, query)
	data, err := c.subscribe(ctx, q, options...)
	if err != nil {
		return err
	}

	go func(in <-chan ctypes.ResultEvent) {
		defer close(results)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-in:
				if !ok {
					return
				}
				if val, ok := msg.Data.(tmtypes.EventDataTx); ok {
					results <- txResultToCommitResult(val.TxResult)
				}
			}
		}
	}(data)
	return nil
}

// subscribe wraps conn.Subscribe and unsubscribes once the context is done.
func (c *Client) subscribe(ctx context.Context, query string, options ...Option) (<-chan ctypes.ResultEvent, error) {
	var outCapacity []int
	for _, option := range options {
		if o, ok := option.(OptionCapacity); ok {
			outCapacity = []int{o.Capacity}
		}
	}
	q, err := tmquery.New(query)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "query %q: %s", query, err)
	}

	subscriber := cmn.RandStr(16)
	out, err := c.conn.Subscribe(ctx, subscriber, q.String(), outCapacity...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "subscribe to %q: %s", query, err)
	}
	go func(stop <-chan struct{}, sub string, q *tmquery.Query) {
		<-stop
		_ = c.conn.Unsubscribe(context.Background(), sub, q.String())
	}(ctx.Done(), subscriber, q)

	return out, nil
}

func resultTxToCommitResult(tx *ctypes.ResultTx) *CommitResult {
	res, err := quorum.ParseDeliverOrError(tx.TxResult)
	return &CommitResult{
		ID:     tx.Hash,
		Height: tx.Height,
		Tx:     tx.Tx,
		Result: res,
		Err:    err,
	}
}

func txResultToCommitResult(tx tmtypes.TxResult) CommitResult {
	res, err := quorum.ParseDeliverOrError(tx.Result)
	return CommitResult{
		ID:     tx.Tx.Hash(),
		Height: tx.Height,
		Tx:     tx.Tx,
		Result: res,
		Err:    err,
	}
}
