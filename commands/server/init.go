package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"path/filepath"

	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagForce = "f"
)

// GenInitOptions produces the app_state section of the genesis file from
// the command line arguments. It is application specific.
type GenInitOptions func(args []string) (json.RawMessage, error)

func parseInitArgs(args []string) (bool, []string, error) {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return false, nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return force, initFlags.Args(), nil
}

// InitCmd adds the application genesis options to the genesis file created
// by "tendermint init" in the home directory. It refuses to overwrite
// existing options unless -f is given.
func InitCmd(gen GenInitOptions, logger log.Logger, home string, args []string) error {
	force, rest, err := parseInitArgs(args)
	if err != nil {
		return err
	}
	options, err := gen(rest)
	if err != nil {
		return errors.Wrap(err, "cannot generate app_state")
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App initialized", "path", genFile)
	return nil
}

// GenesisDoc holds tendermint specific structures we do not want to parse,
// so that only the app_state can be updated.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file, run tendermint init first: %s", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot parse genesis file: %s", err)
	}

	if state, ok := doc["app_state"]; ok && len(state) > 0 && string(state) != "null" && !force {
		return errors.Wrap(errors.ErrInvalidState, "app_state already set, use -f to overwrite")
	}
	doc["app_state"] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
