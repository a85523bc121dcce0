package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/orm"
)

// flAddress returns a value initialized with the given default value and
// optionally overwritten by a command line argument. An invalid default
// terminates the process.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *quorum.Address {
	var a quorum.Address
	if defaultVal != "" {
		var err error
		a, err = quorum.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flAddresses is flAddress for a comma separated list.
func flAddresses(fl *flag.FlagSet, name, usage string) *[]quorum.Address {
	var list addressList
	fl.Var(&list, name, usage)
	return (*[]quorum.Address)(&list)
}

type addressList []quorum.Address

func (l addressList) String() string {
	chunks := make([]string, len(l))
	for i, a := range l {
		chunks[i] = a.String()
	}
	return strings.Join(chunks, ",")
}

func (l *addressList) Set(raw string) error {
	for _, chunk := range strings.Split(raw, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		a, err := quorum.ParseAddress(chunk)
		if err != nil {
			return err
		}
		*l = append(*l, a)
	}
	return nil
}

// flSeq returns the orm sequence ID of the decimal flag value. Zero is
// returned as nil.
func flSeq(fl *flag.FlagSet, name, usage string) *sequenceFlag {
	var s sequenceFlag
	fl.Var(&s, name, usage)
	return &s
}

type sequenceFlag struct {
	n uint64
}

func (s *sequenceFlag) String() string {
	if s == nil {
		return "0"
	}
	return fmt.Sprint(s.n)
}

func (s *sequenceFlag) Set(raw string) error {
	_, err := fmt.Sscanf(raw, "%d", &s.n)
	return err
}

// ID returns the 8 bytes representation or nil if the flag was not set.
func (s *sequenceFlag) ID() []byte {
	if s.n == 0 {
		return nil
	}
	return orm.EncodeSequence(s.n)
}
