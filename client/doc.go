/*
Package client wraps a tendermint rpc connection to submit transactions to
and query the state of a quorum node.
*/
package client
