package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestConfigFileAndEnv(t *testing.T) {
	keyPath, cleanup := tempKeyPath(t)
	defer cleanup()
	confPath := filepath.Join(filepath.Dir(keyPath), "quorumcli.yaml")

	os.Setenv("QUORUMCLI_CONFIG", confPath)
	defer os.Unsetenv("QUORUMCLI_CONFIG")

	conf, err := loadConfig()
	assert.Nil(t, err)
	assert.Equal(t, "http://localhost:26657", conf.GetString(confTendermint))

	var output bytes.Buffer
	if err := cmdConfig(nil, &output, []string{"-set", "tm=http://node:26657"}); err != nil {
		t.Fatalf("cannot set configuration: %s", err)
	}
	if !strings.Contains(output.String(), "tm: http://node:26657") {
		t.Fatalf("unexpected output: %s", output.String())
	}

	conf, err = loadConfig()
	assert.Nil(t, err)
	assert.Equal(t, "http://node:26657", conf.GetString(confTendermint))

	os.Setenv("QUORUMCLI_TM", "http://env:26657")
	defer os.Unsetenv("QUORUMCLI_TM")
	conf, err = loadConfig()
	assert.Nil(t, err)
	assert.Equal(t, "http://env:26657", conf.GetString(confTendermint))

	if err := cmdConfig(nil, &output, []string{"-set", "unknown=1"}); err == nil {
		t.Fatal("want an unknown configuration error")
	}
}
