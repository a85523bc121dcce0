package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/quorum"
)

// commands is a register of all available commands. The name is matched
// against the first argument given.
//
// A command function reads its input and writes its output only to the
// given reader and writer. Arguments exclude the program and command names
// and are parsed by the command using the flag package. Transactions are
// passed between commands in their binary form, so that a pipeline can be
// built:
//
//	$ quorumcli mint -asset 1 -to 5AE2C58796B0AD48FFE7602EAC3353488C859A2B -amount 12.5 \
//	    | quorumcli propose -group 1 \
//	    | quorumcli sign \
//	    | quorumcli submit
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"approve":         cmdApprove,
	"attach-metadata": cmdAttachMetadata,
	"config":          cmdConfig,
	"create-asset":    cmdCreateAsset,
	"create-group":    cmdCreateGroup,
	"execute":         cmdExecute,
	"history":         cmdHistory,
	"keyaddr":         cmdKeyaddr,
	"keygen":          cmdKeygen,
	"mint":            cmdMint,
	"propose":         cmdPropose,
	"query":           cmdQuery,
	"sign":            cmdSignTransaction,
	"submit":          cmdSubmitTransaction,
	"version":         cmdVersion,
	"view":            cmdTransactionView,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the quorum application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, quorum.Version())
	return nil
}
