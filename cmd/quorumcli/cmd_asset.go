package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/quorum/cmd/quorumd/app"
	"github.com/iov-one/quorum/x/asset"
)

func cmdCreateAsset(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction registering a new asset. The authority is the only one
allowed to attach metadata and mint.
`)
		fl.PrintDefaults()
	}
	var (
		authorityFl = flAddress(fl, "authority", "", "Address of the asset authority.")
		decimalsFl  = fl.Uint("decimals", 0, "Number of fractional digits of the asset.")
	)
	fl.Parse(args)

	msg := asset.CreateAssetMsg{
		Authority: *authorityFl,
		Decimals:  uint32(*decimalsFl),
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: &msg})
	return err
}

func cmdAttachMetadata(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction attaching a name, a symbol and an optional locator to an
asset. Metadata can be attached only once.
`)
		fl.PrintDefaults()
	}
	var (
		assetFl   = flSeq(fl, "asset", "ID of the asset.")
		nameFl    = fl.String("name", "", "Human readable name.")
		symbolFl  = fl.String("symbol", "", "Ticker symbol.")
		locatorFl = fl.String("locator", "", "Optional URL of a description document.")
	)
	fl.Parse(args)

	msg := asset.AttachMetadataMsg{
		AssetID: assetFl.ID(),
		Name:    *nameFl,
		Symbol:  *symbolFl,
		Locator: *locatorFl,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: &msg})
	return err
}

func cmdMint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction minting units of an asset. The amount is given in human
form, for example 12.5, and converted using the decimals of the asset.
`)
		fl.PrintDefaults()
	}
	var (
		assetFl    = flSeq(fl, "asset", "ID of the asset.")
		toFl       = flAddress(fl, "to", "", "Address receiving the minted units.")
		amountFl   = fl.String("amount", "", "Amount to mint.")
		decimalsFl = fl.Uint("decimals", 0, "Number of fractional digits of the asset.")
	)
	fl.Parse(args)

	amount, err := asset.ParseAmount(*amountFl, uint32(*decimalsFl))
	if err != nil {
		flagDie("invalid amount: %s", err)
	}
	msg := asset.MintMsg{
		AssetID:     assetFl.ID(),
		Destination: *toFl,
		Amount:      amount,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("given data produce an invalid message: %s", err)
	}
	_, err = writeTx(output, &app.Tx{Msg: &msg})
	return err
}
