package client

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/tendermint/tendermint/abci/example/kvstore"
	nm "github.com/tendermint/tendermint/node"
	rpctest "github.com/tendermint/tendermint/rpc/test"
)

var node *nm.Node

func TestMain(m *testing.M) {
	config := rpctest.GetConfig()
	config.Moniker = "QuorumClientTest"
	// Index all tags, so that transactions can be searched.
	config.TxIndex.IndexTags = ""
	config.TxIndex.IndexAllTags = true

	node = rpctest.StartTendermint(kvstore.NewKVStoreApplication())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	_, err := NewLocalClient(node).WaitForNextBlock(ctx)
	cancel()

	var code int
	if err == nil {
		code = m.Run()
	} else {
		fmt.Printf("Failed to start tendermint: %s\n", err)
		code = 1
	}

	_ = node.Stop()
	node.Wait()
	os.Exit(code)
}
