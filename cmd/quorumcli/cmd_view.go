package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display transaction summary. Before signing you should check what
kind of operation you are authorizing.

A proposal payload is decoded and displayed as well.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	view, err := txView(tx)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(view, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}

type transactionView struct {
	Path       string               `json:"path"`
	Msg        interface{}          `json:"msg"`
	Action     *transactionView     `json:"action,omitempty"`
	Signatures []*sigs.StdSignature `json:"signatures,omitempty"`
}

func txView(tx *app.Tx) (*transactionView, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, fmt.Errorf("cannot extract message: %s", err)
	}
	view := &transactionView{
		Path:       msg.Path(),
		Msg:        msg,
		Signatures: tx.Signatures,
	}
	if p, ok := msg.(*multisig.ProposeMsg); ok {
		action, err := app.DecodeMsg(p.Payload)
		if err != nil {
			return nil, fmt.Errorf("cannot decode proposal payload: %s", err)
		}
		view.Action = &transactionView{Path: action.Path(), Msg: action}
	}
	return view, nil
}
