package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/x/multisig"
)

func cmdCreateGroup(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction registering a new multisig group. The ID of the group is
printed when the transaction is submitted.
`)
		fl.PrintDefaults()
	}
	var (
		ownersFl    = flAddresses(fl, "owners", "Comma separated list of owner addresses.")
		thresholdFl = fl.Uint("threshold", 1, "Number of approvals required to execute a proposal.")
	)
	fl.Parse(args)

	msg := multisig.CreateGroupMsg{
		Owners:    *ownersFl,
		Threshold: uint32(*thresholdFl),
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: &msg})
	return err
}

func cmdPropose(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a transaction from standard input and wrap its message into a proposal of
a multisig group. The message is dispatched when the proposal is executed.
`)
		fl.PrintDefaults()
	}
	var (
		groupFl    = flSeq(fl, "group", "ID of the group making the proposal.")
		proposerFl = flAddress(fl, "proposer", "", "Optional proposer address. Defaults to the main signer.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read input transaction: %s", err)
	}
	msg, err := propose(tx, groupFl.ID())
	if err != nil {
		return err
	}
	msg.Proposer = *proposerFl
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err = writeTx(output, &app.Tx{Msg: msg})
	return err
}

// propose returns a proposal dispatching the message of the transaction.
func propose(tx *app.Tx, groupID []byte) (*multisig.ProposeMsg, error) {
	action, err := tx.GetMsg()
	if err != nil {
		return nil, fmt.Errorf("cannot extract message: %s", err)
	}
	payload, err := app.EncodeMsg(action)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize message: %s", err)
	}
	return &multisig.ProposeMsg{
		GroupID: groupID,
		Target:  action.Path(),
		Payload: payload,
	}, nil
}

func cmdApprove(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction approving a proposal.
`)
		fl.PrintDefaults()
	}
	var (
		proposalFl = flSeq(fl, "proposal", "ID of the proposal to approve.")
		approverFl = flAddress(fl, "approver", "", "Optional approver address. Defaults to the main signer.")
	)
	fl.Parse(args)

	msg := multisig.ApproveMsg{
		ProposalID: proposalFl.ID(),
		Approver:   *approverFl,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: &msg})
	return err
}

func cmdExecute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction executing an approved proposal. Accounts are the
addresses the dispatched message is allowed to operate on.
`)
		fl.PrintDefaults()
	}
	var (
		proposalFl = flSeq(fl, "proposal", "ID of the proposal to execute.")
		groupFl    = flSeq(fl, "group", "ID of the group of the proposal.")
		accountsFl = flAddresses(fl, "accounts", "Comma separated list of addresses the action operates on.")
	)
	fl.Parse(args)

	msg := multisig.ExecuteMsg{
		ProposalID: proposalFl.ID(),
		GroupID:    groupFl.ID(),
		Accounts:   *accountsFl,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: &msg})
	return err
}
