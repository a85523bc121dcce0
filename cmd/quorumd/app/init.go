package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/commands/server"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions produces the genesis app_state for a development chain.
// The address given as the first argument (or a generated one) is the only
// owner of the first group and the authority of the first asset.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr quorum.Address
	if len(args) > 0 {
		a, err := quorum.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "address")
		}
		addr = a
	} else {
		key := crypto.GenPrivKeyEd25519()
		addr = key.PublicKey().Address()
		fmt.Printf("Generated key, public %s, address %s\n", key.PublicKey().Base58(), addr)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"conf": dict{
			"multisig": multisig.DefaultConfiguration(),
		},
		"multisig": dict{
			"groups": array{
				dict{
					"owners":    array{addr},
					"threshold": 1,
				},
			},
		},
		"asset": dict{
			"assets": array{
				dict{
					"decimals":  6,
					"authority": addr,
					"name":      "Quorum",
					"symbol":    "QRM",
				},
			},
		},
	})
}

// GenerateApp creates the application for the start command.
func GenerateApp(options *server.Options) (abci.Application, error) {
	// The database goes in a subdirectory, an empty home keeps it in memory.
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "quorum.db")
	}
	application, err := Application(Stack(), dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithLogger(options.Logger)
	return application, nil
}
