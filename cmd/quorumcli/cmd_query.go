package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/client"
	"github.com/iov-one/quorum/orm"
	"github.com/iov-one/quorum/x/asset"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
)

type respDecoder interface {
	Unmarshal([]byte) error
}

// resultParser maps a query path to the model it returns.
var resultParser = map[string]func() respDecoder{
	"/auth":      func() respDecoder { return &sigs.UserData{} },
	"/groups":    func() respDecoder { return &multisig.Group{} },
	"/proposals": func() respDecoder { return &multisig.Proposal{} },
	"/assets":    func() respDecoder { return &asset.Asset{} },
	"/holdings":  func() respDecoder { return &asset.Holding{} },
}

type idEncoder func(string) ([]byte, error)

// idEncoders converts the -data flag value into a query key. Paths not
// listed accept hex.
var idEncoders = map[string]idEncoder{
	"/groups":    seqEncoder,
	"/proposals": seqEncoder,
	"/assets":    seqEncoder,
	"/auth":      addressEncoder,
	"/holdings": func(s string) ([]byte, error) {
		// <asset>:<owner>
		chunks := strings.SplitN(s, ":", 2)
		if len(chunks) != 2 {
			return nil, fmt.Errorf("holding key must be in asset:owner format")
		}
		id, err := seqEncoder(chunks[0])
		if err != nil {
			return nil, err
		}
		owner, err := quorum.ParseAddress(chunks[1])
		if err != nil {
			return nil, err
		}
		return asset.HoldingKey(id, owner), nil
	},
}

func seqEncoder(s string) ([]byte, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return orm.EncodeSequence(n), nil
}

func addressEncoder(s string) ([]byte, error) {
	return quorum.ParseAddress(s)
}

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Query the application state and print found entities in JSON format.

Supported paths are /auth, /groups, /proposals, /assets and /holdings.
Entities are selected by their decimal ID, or by address for /auth. Holdings
are selected by asset:owner.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", mustConfig().GetString(confTendermint),
			"Tendermint node address. You can use QUORUMCLI_TM environment variable to set it.")
		pathFl        = fl.String("path", "", "Query path.")
		dataFl        = fl.String("data", "", "Query key.")
		prefixQueryFl = fl.Bool("prefix", false, "Run a prefix query.")
	)
	fl.Parse(args)
	if len(*pathFl) == 0 {
		flagDie("non empty path required")
	}

	data, err := queryKey(*pathFl, *dataFl)
	if err != nil {
		return fmt.Errorf("cannot encode data: %s", err)
	}
	queryPath := *pathFl
	if *prefixQueryFl {
		queryPath += "?" + quorum.PrefixQueryMod
	}
	resp, err := client.NewHTTPClient(*tmAddrFl).AbciQuery(queryPath, data)
	if err != nil {
		return fmt.Errorf("failed to run query: %s", err)
	}
	return printModels(output, *pathFl, resp.Models)
}

func queryKey(path, data string) ([]byte, error) {
	if data == "" {
		return nil, nil
	}
	if enc, ok := idEncoders[path]; ok {
		return enc(data)
	}
	return hex.DecodeString(data)
}

type queryResult struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
	// Address is set for groups only.
	Address quorum.Address `json:"address,omitempty"`
}

// printModels writes the decoded models as a JSON list. Values of unknown
// paths are printed in hex.
func printModels(output io.Writer, path string, models []quorum.Model) error {
	results := make([]queryResult, 0, len(models))
	for _, m := range models {
		r := queryResult{Key: hex.EncodeToString(m.Key)}
		if path == "/groups" {
			r.Address = multisig.GroupCondition(m.Key).Address()
		}
		if newModel, ok := resultParser[path]; ok {
			obj := newModel()
			if err := obj.Unmarshal(m.Value); err != nil {
				return fmt.Errorf("cannot decode %x value: %s", m.Key, err)
			}
			r.Value = obj
		} else {
			r.Value = hex.EncodeToString(m.Value)
		}
		results = append(results, r)
	}
	pretty, err := json.MarshalIndent(results, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize to JSON: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}
