package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/quorum/client"
	"github.com/iov-one/quorum/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction from standard input,
adds a signature and writes back to standard output the signed transaction.

The chain ID and the sequence of the signer are fetched from the node unless
both are provided.
`)
		fl.PrintDefaults()
	}
	conf := mustConfig()
	var (
		tmAddrFl = fl.String("tm", conf.GetString(confTendermint),
			"Tendermint node address. You can use QUORUMCLI_TM environment variable to set it.")
		keyPathFl = fl.String("key", conf.GetString(confKeyPath),
			"Path to the private key file that transaction should be signed with. You can use QUORUMCLI_KEY environment variable to set it.")
		chainFl = fl.String("chain", conf.GetString(confChainID),
			"Chain ID. Fetched from the node when empty. You can use QUORUMCLI_CHAIN environment variable to set it.")
		seqFl = fl.Int64("seq", -1, "Sequence of the signer. Fetched from the node when negative.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	chainID, seq := *chainFl, *seqFl
	if chainID == "" || seq < 0 {
		c := client.NewHTTPClient(*tmAddrFl)
		if chainID == "" {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if chainID, err = c.ChainID(ctx); err != nil {
				return fmt.Errorf("cannot fetch chain ID: %s", err)
			}
		}
		if seq < 0 {
			if seq, err = client.NewNonce(c, key.PublicKey().Address()).Next(); err != nil {
				return fmt.Errorf("cannot get the next sequence number: %s", err)
			}
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
