package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func writeGenesis(t *testing.T, home, content string) string {
	t.Helper()
	dir := filepath.Join(home, "config")
	require.NoError(t, os.MkdirAll(dir, 0700))
	path := filepath.Join(dir, "genesis.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitCmd(t *testing.T) {
	home, err := ioutil.TempDir("", "quorum-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	path := writeGenesis(t, home, `{"chain_id": "test-chain", "app_hash": ""}`)

	var gotArgs []string
	gen := func(args []string) (json.RawMessage, error) {
		gotArgs = args
		return json.RawMessage(`{"multisig": {}}`), nil
	}

	require.NoError(t, InitCmd(gen, log.NewNopLogger(), home, []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, gotArgs)

	raw, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	var doc GenesisDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `{"multisig": {}}`, string(doc["app_state"]))
	assert.JSONEq(t, `"test-chain"`, string(doc["chain_id"]))

	err = InitCmd(gen, log.NewNopLogger(), home, nil)
	assert.True(t, errors.ErrInvalidState.Is(err))

	require.NoError(t, InitCmd(gen, log.NewNopLogger(), home, []string{"-f"}))
}

func TestInitCmdWithoutGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "quorum-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	gen := func([]string) (json.RawMessage, error) { return json.RawMessage(`{}`), nil }
	err = InitCmd(gen, log.NewNopLogger(), home, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}

type requireKey string

func (k requireKey) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	if _, ok := opts[string(k)]; !ok {
		return errors.Wrapf(errors.ErrEmpty, "missing %q", string(k))
	}
	return nil
}

func TestValidateGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "quorum-validate")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	path := writeGenesis(t, home, `{"chain_id": "test-chain", "app_state": {"asset": {}}}`)
	assert.NoError(t, ValidateGenesis(requireKey("asset"), []string{path}))

	err = ValidateGenesis(requireKey("multisig"), []string{path})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestParseStartArgs(t *testing.T) {
	addr, debug, err := parseStartArgs([]string{"-bind", "tcp://0.0.0.0:1234", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, "tcp://0.0.0.0:1234", addr)
	assert.True(t, debug)

	addr, debug, err = parseStartArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", addr)
	assert.False(t, debug)

	_, _, err = parseStartArgs([]string{"-unknown"})
	assert.True(t, errors.ErrInvalidInput.Is(err))
}
