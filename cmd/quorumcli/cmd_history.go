package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/quorum/client"
	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/x/multisig"
)

func cmdHistory(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List committed transactions of a proposal or of a group, oldest first. For a
proposal this is its propose, approve and execute history.

Only the first page of results is returned.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", mustConfig().GetString(confTendermint),
			"Tendermint node address. You can use QUORUMCLI_TM environment variable to set it.")
		proposalFl = flSeq(fl, "proposal", "ID of the proposal.")
		groupFl    = flSeq(fl, "group", "ID of the group. Ignored if a proposal is given.")
		timeoutFl  = fl.Duration("timeout", 10*time.Second, "How long to wait for the search result.")
	)
	fl.Parse(args)

	query, err := historyQuery(proposalFl.ID(), groupFl.ID())
	if err != nil {
		flagDie("%s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFl)
	defer cancel()
	results, err := client.NewHTTPClient(*tmAddrFl).SearchTx(ctx, query)
	if err != nil {
		return fmt.Errorf("cannot search transactions: %s", err)
	}
	return printHistory(output, results)
}

// historyQuery returns the transaction search query. Proposal takes
// precedence over group.
func historyQuery(proposalID, groupID []byte) (client.TxQuery, error) {
	switch {
	case proposalID != nil:
		return client.QueryByTag(multisig.TagProposal, proposalID), nil
	case groupID != nil:
		return client.QueryByTag(multisig.TagGroup, groupID), nil
	default:
		return "", errors.New("proposal or group ID is required")
	}
}

type historyEntry struct {
	Height int64  `json:"height"`
	TxID   string `json:"txid"`
	Path   string `json:"path,omitempty"`
	Error  string `json:"error,omitempty"`
}

// printHistory writes a JSON list of the results. Transactions are decoded
// to display their message path.
func printHistory(output io.Writer, results []*client.CommitResult) error {
	entries := make([]historyEntry, 0, len(results))
	for _, r := range results {
		e := historyEntry{Height: r.Height, TxID: r.ID.String()}
		tx, err := app.TxDecoder(r.Tx)
		if err != nil {
			return fmt.Errorf("cannot decode transaction %s: %s", r.ID, err)
		}
		msg, err := tx.GetMsg()
		if err != nil {
			return fmt.Errorf("cannot extract message of %s: %s", r.ID, err)
		}
		e.Path = msg.Path()
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	pretty, err := json.MarshalIndent(entries, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize to JSON: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}
