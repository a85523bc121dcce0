package server

import (
	"flag"

	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind  = "bind"
	flagDebug = "debug"
)

// Options are the runtime settings of an application.
type Options struct {
	Home   string
	Logger log.Logger
	Debug  bool
	Bind   string
}

// AppGenerator lazily initializes the app, using the home directory and the
// logger.
type AppGenerator func(*Options) (abci.Application, error)

func parseStartArgs(args []string) (string, bool, error) {
	var (
		addr  string
		debug bool
	)
	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&addr, flagBind, "tcp://localhost:26658", "address server listens on")
	startFlags.BoolVar(&debug, flagDebug, false, "call stack returned on error")
	if err := startFlags.Parse(args); err != nil {
		return "", false, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return addr, debug, nil
}

// StartCmd initializes the application and runs the abci socket server
// until the process receives a termination signal.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	addr, debug, err := parseStartArgs(args)
	if err != nil {
		return err
	}

	app, err := gen(&Options{
		Home:   home,
		Logger: logger,
		Debug:  debug,
		Bind:   addr,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", addr)
	svr, err := server.NewServer(addr, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrInvalidState, "cannot start server: %s", err)
	}

	cmn.TrapSignal(logger, func() {
		if err := svr.Stop(); err != nil {
			logger.Error("Cannot stop the server", "err", err)
		}
	})
	// Run until the signal handler exits the process.
	select {}
}
