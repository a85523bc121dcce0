package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/client"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it. The
command returns once the transaction is included in a block.

For transactions creating an entity, the ID of that entity is printed.
Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", mustConfig().GetString(confTendermint),
			"Tendermint node address. You can use QUORUMCLI_TM environment variable to set it.")
		timeoutFl = fl.Duration("timeout", defaultSubmitTimeout, "How long to wait for the transaction to be included in a block.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFl)
	defer cancel()
	res, err := client.NewHTTPClient(*tmAddrFl).CommitTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	if res.Err != nil {
		return fmt.Errorf("transaction failed: %s", res.Err)
	}

	var data []byte
	if res.Result != nil {
		data = res.Result.Data
	}
	pretty, err := extractResponse(tx, data, formatters)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if pretty != "" {
		fmt.Fprintln(output, pretty)
	}
	return nil
}

// extractResponse returns a human readable representation of the response
// data. It returns an empty string when the response is not worth showing.
func extractResponse(tx quorum.Tx, respData []byte, fmts map[string]func([]byte) (string, error)) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", fmt.Errorf("cannot extract message from transaction: %s", err)
	}
	format, ok := fmts[msg.Path()]
	if !ok {
		return "", nil
	}
	pretty, err := format(respData)
	if err != nil {
		return "", fmt.Errorf("cannot format result data %x: %s", respData, err)
	}
	return pretty, nil
}

// formatters maps message paths to their response formatter. Responses of
// messages not registered here are not printed.
var formatters = map[string]func([]byte) (string, error){
	multisig.CreateGroupMsg{}.Path(): fmtSequence,
	multisig.ProposeMsg{}.Path():     fmtSequence,
	asset.CreateAssetMsg{}.Path():    fmtSequence,
}

const defaultSubmitTimeout = 30 * time.Second
