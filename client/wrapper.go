package client

import (
	"context"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// SubscribeTxByID blocks until there is a result, then returns it. Cancel
// the context to avoid blocking forever.
func (c *Client) SubscribeTxByID(ctx context.Context, id TransactionID) (*CommitResult, error) {
	txs := make(chan CommitResult, 1)
	if err := c.SubscribeTx(ctx, QueryTxByID(id), txs); err != nil {
		return nil, err
	}
	res, ok := <-txs
	if !ok {
		return nil, errors.Wrap(errors.ErrTimeout, "unsubscribed before result")
	}
	return &res, nil
}

// WatchTx blocks until the transaction makes it into a block. It returns
// immediately if the transaction was included in a block before.
func (c *Client) WatchTx(ctx context.Context, id TransactionID) (*CommitResult, error) {
	subctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := make(chan resultOrError, 1)
	go func() {
		res, err := c.SubscribeTxByID(subctx, id)
		sub <- resultOrError{result: res, err: err}
	}()

	// Not found is reported as an error, so only a result is relevant.
	if search, _ := c.GetTxByID(ctx, id); search != nil {
		return search, nil
	}

	result := <-sub
	return result.result, result.err
}

// CommitTx blocks on both check and deliver, returning when the
// transaction is in a block.
func (c *Client) CommitTx(ctx context.Context, tx quorum.Tx) (*CommitResult, error) {
	id, err := c.SubmitTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	res, err := c.WatchTx(ctx, id)
	if err == nil {
		c.waitForTxIndex()
	}
	return res, err
}

// WaitForNextBlock returns the next block header to arrive.
func (c *Client) WaitForNextBlock(ctx context.Context) (*Header, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	headers := make(chan Header, 1)
	if err := c.SubscribeHeaders(cctx, headers); err != nil {
		return nil, err
	}
	h, ok := <-headers
	if !ok {
		return nil, errors.Wrap(errors.ErrTimeout, "subscription closed without returning any headers")
	}
	c.waitForTxIndex()
	return &h, nil
}

// WaitForHeight returns as soon as a header equal to or greater than the
// given height arrives. If the height is in the past, it waits for the next
// block.
func (c *Client) WaitForHeight(ctx context.Context, height int64) (*Header, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	headers := make(chan Header, 2)
	if err := c.SubscribeHeaders(cctx, headers); err != nil {
		return nil, err
	}
	for h := range headers {
		if h.Height >= height {
			c.waitForTxIndex()
			return &h, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrTimeout, "subscription closed before height %d", height)
}

// waitForTxIndex gives the node time to index the transactions of the last
// block, so that they can be searched.
func (c *Client) waitForTxIndex() {
	time.Sleep(100 * time.Millisecond)
}
