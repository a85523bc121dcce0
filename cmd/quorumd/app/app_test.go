package app

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/app"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

const chainID = "quorum-test"

// testNode drives an in-memory application block by block and keeps the
// sequence of every signer.
type testNode struct {
	t      *testing.T
	app    app.BaseApp
	height int64
	seq    map[string]int64
}

func newTestNode(t *testing.T, appState interface{}) *testNode {
	t.Helper()
	application, err := Application(Stack(), "", false)
	require.NoError(t, err)

	state, err := json.Marshal(appState)
	require.NoError(t, err)
	application.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})
	return &testNode{t: t, app: application, seq: make(map[string]int64)}
}

// deliver runs a single transaction in its own block.
func (n *testNode) deliver(msg quorum.Msg, signers ...*crypto.PrivateKey) abci.ResponseDeliverTx {
	n.t.Helper()
	tx := &Tx{Msg: msg}
	for _, s := range signers {
		addr := s.PublicKey().Address().String()
		sig, err := sigs.SignTx(s, tx, chainID, n.seq[addr])
		require.NoError(n.t, err)
		tx.Signatures = append(tx.Signatures, sig)
		n.seq[addr]++
	}
	raw, err := tx.Marshal()
	require.NoError(n.t, err)

	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: n.height, Time: time.Now()}})
	res := n.app.DeliverTx(raw)
	n.app.EndBlock(abci.RequestEndBlock{Height: n.height})
	n.app.Commit()
	return res
}

func (n *testNode) query(path string, key []byte, dest quorum.Persistent) {
	n.t.Helper()
	res := n.app.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(n.t, uint32(0), res.Code, res.Log)
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, dest))
}

func TestMintThroughProposal(t *testing.T) {
	alice, bob := crypto.GenPrivKeyEd25519(), crypto.GenPrivKeyEd25519()
	dest := crypto.GenPrivKeyEd25519().PublicKey().Address()

	node := newTestNode(t, map[string]interface{}{
		"multisig": map[string]interface{}{
			"groups": []interface{}{
				map[string]interface{}{
					"owners":    []quorum.Address{alice.PublicKey().Address(), bob.PublicKey().Address()},
					"threshold": 2,
				},
			},
		},
		"asset": map[string]interface{}{
			"assets": []interface{}{
				map[string]interface{}{
					"decimals":  2,
					"authority": alice.PublicKey().Address(),
					"name":      "Test",
					"symbol":    "TST",
				},
			},
		},
	})
	groupID := orm.EncodeSequence(1)
	assetID := orm.EncodeSequence(1)

	payload, err := EncodeMsg(&asset.MintMsg{AssetID: assetID, Destination: dest, Amount: 1250})
	require.NoError(t, err)

	res := node.deliver(&multisig.ProposeMsg{
		GroupID: groupID,
		Target:  "asset/mint",
		Payload: payload,
	}, alice)
	require.Equal(t, uint32(0), res.Code, res.Log)
	proposalID := res.Data

	execute := &multisig.ExecuteMsg{
		ProposalID: proposalID,
		GroupID:    groupID,
		Accounts:   []quorum.Address{dest},
	}

	res = node.deliver(execute, alice)
	require.True(t, multisig.ErrNotEnoughApprovals.Is(errors.ABCIError(res.Code, res.Log)), res.Log)

	res = node.deliver(&multisig.ApproveMsg{ProposalID: proposalID}, bob)
	require.Equal(t, uint32(0), res.Code, res.Log)

	res = node.deliver(execute, alice)
	require.Equal(t, uint32(0), res.Code, res.Log)

	var holding asset.Holding
	node.query("/holdings", asset.HoldingKey(assetID, dest), &holding)
	require.Equal(t, uint64(1250), holding.Amount)

	var a asset.Asset
	node.query("/assets", assetID, &a)
	require.Equal(t, uint64(1250), a.Supply)

	var p multisig.Proposal
	node.query("/proposals", proposalID, &p)
	require.True(t, p.Executed)

	res = node.deliver(execute, alice)
	require.True(t, multisig.ErrAlreadyExecuted.Is(errors.ABCIError(res.Code, res.Log)), res.Log)

	node.query("/holdings", asset.HoldingKey(assetID, dest), &holding)
	require.Equal(t, uint64(1250), holding.Amount)
}

func TestExecuteWithoutAccountsFails(t *testing.T) {
	alice := crypto.GenPrivKeyEd25519()
	dest := crypto.GenPrivKeyEd25519().PublicKey().Address()
	node := newTestNode(t, map[string]interface{}{
		"multisig": map[string]interface{}{
			"groups": []interface{}{
				map[string]interface{}{
					"owners":    []quorum.Address{alice.PublicKey().Address()},
					"threshold": 1,
				},
			},
		},
		"asset": map[string]interface{}{
			"assets": []interface{}{
				map[string]interface{}{"authority": alice.PublicKey().Address()},
			},
		},
	})
	groupID := orm.EncodeSequence(1)
	assetID := orm.EncodeSequence(1)

	payload, err := EncodeMsg(&asset.MintMsg{AssetID: assetID, Destination: dest, Amount: 1})
	require.NoError(t, err)
	res := node.deliver(&multisig.ProposeMsg{GroupID: groupID, Target: "asset/mint", Payload: payload}, alice)
	require.Equal(t, uint32(0), res.Code, res.Log)
	proposalID := res.Data

	res = node.deliver(&multisig.ExecuteMsg{ProposalID: proposalID, GroupID: groupID}, alice)
	require.NotEqual(t, uint32(0), res.Code)

	// The failed dispatch leaves the proposal executable.
	var p multisig.Proposal
	node.query("/proposals", proposalID, &p)
	require.False(t, p.Executed)

	res = node.deliver(&multisig.ExecuteMsg{
		ProposalID: proposalID,
		GroupID:    groupID,
		Accounts:   []quorum.Address{dest},
	}, alice)
	require.Equal(t, uint32(0), res.Code, res.Log)
}

func TestUnsignedTxIsRejected(t *testing.T) {
	node := newTestNode(t, map[string]interface{}{})
	owner := crypto.GenPrivKeyEd25519().PublicKey().Address()
	res := node.deliver(&multisig.CreateGroupMsg{Owners: []quorum.Address{owner}, Threshold: 1})
	require.True(t, errors.ErrUnauthorized.Is(errors.ABCIError(res.Code, res.Log)), fmt.Sprintf("%d %s", res.Code, res.Log))
}
