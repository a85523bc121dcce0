package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/quorum/crypto"
	"golang.org/x/crypto/ed25519"
)

// defaultDerivationPath is a hardened SLIP-0010 path.
const defaultDerivationPath = "m/44'/234'/0'"

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.

When a hex encoded seed is provided, the key is derived from it using the
given path. Otherwise a random key is generated.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", mustConfig().GetString(confKeyPath),
			"Path to the private key file. You can use QUORUMCLI_KEY environment variable to set it.")
		seedFl = fl.String("seed", "", "Hex encoded master seed to derive the key from.")
		pathFl = fl.String("path", defaultDerivationPath, "Derivation path, used together with -seed.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// The user must delete an existing key manually.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	key, err := keygen(*seedFl, *pathFl)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(key.Ed25519); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	return nil
}

func keygen(seed, path string) (*crypto.PrivateKey, error) {
	if seed == "" {
		return crypto.GenPrivKeyEd25519(), nil
	}
	raw, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %s", err)
	}
	return crypto.DerivePrivKeyEd25519(raw, path)
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the address associated with your private key, in hex and bech32
forms, together with the base58 encoded public key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", mustConfig().GetString(confKeyPath),
			"Path to the private key file. You can use QUORUMCLI_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return err
	}
	pub := key.PublicKey()
	addr := pub.Address()
	_, err = fmt.Fprintf(output, "address: %s\nbech32:  %s\npubkey:  %s\n", addr, addr.Bech32(), pub.Base58())
	return err
}

func decodePrivateKey(filepath string) (*crypto.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", filepath, err)
	}
	if len(data) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d", len(data))
	}
	return &crypto.PrivateKey{Ed25519: data}, nil
}
