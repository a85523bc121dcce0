package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const (
	confTendermint = "tm"
	confKeyPath    = "key"
	confChainID    = "chain"
)

// loadConfig reads the configuration file, if present, and the QUORUMCLI_
// prefixed environment variables. Environment variables take precedence.
// The file location can be changed with QUORUMCLI_CONFIG.
func loadConfig() (*viper.Viper, error) {
	home := os.Getenv("HOME")
	path := os.Getenv("QUORUMCLI_CONFIG")
	if path == "" {
		path = filepath.Join(home, ".quorumcli.yaml")
	}

	conf := viper.New()
	conf.SetDefault(confTendermint, "http://localhost:26657")
	conf.SetDefault(confKeyPath, filepath.Join(home, ".quorumcli.priv.key"))
	conf.SetDefault(confChainID, "")
	conf.SetEnvPrefix("QUORUMCLI")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	conf.SetConfigType("yaml")
	conf.SetConfigFile(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return conf, nil
	}
	if err := conf.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read %q configuration: %s", path, err)
	}
	return conf, nil
}

// mustConfig is loadConfig for flag defaults. An invalid configuration
// terminates the process.
func mustConfig() *viper.Viper {
	conf, err := loadConfig()
	if err != nil {
		flagDie("%s", err)
	}
	return conf
}

func cmdConfig(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the configuration used by all commands. Values are read from the
configuration file ($HOME/.quorumcli.yaml unless QUORUMCLI_CONFIG is set) and
can be overwritten by QUORUMCLI_TM, QUORUMCLI_KEY and QUORUMCLI_CHAIN
environment variables.

Use -set to write a value into the configuration file.
`)
		fl.PrintDefaults()
	}
	var (
		setFl = fl.String("set", "", "A name=value pair to store in the configuration file.")
	)
	fl.Parse(args)

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	if *setFl != "" {
		chunks := strings.SplitN(*setFl, "=", 2)
		if len(chunks) != 2 {
			flagDie("set value must be in name=value format")
		}
		name := strings.TrimSpace(chunks[0])
		switch name {
		case confTendermint, confKeyPath, confChainID:
		default:
			return fmt.Errorf("unknown configuration %q", name)
		}
		conf.Set(name, strings.TrimSpace(chunks[1]))
		if err := conf.WriteConfigAs(conf.ConfigFileUsed()); err != nil {
			return fmt.Errorf("cannot write configuration: %s", err)
		}
	}

	keys := conf.AllKeys()
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(output, "%s: %v\n", k, conf.Get(k))
	}
	return nil
}
