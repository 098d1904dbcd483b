package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Exit code constants
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
)

func main() {
	var (
		file    string
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "muninproto",
		Short: "Interactive decoder for the munin master/node line protocol",
		Long: `muninproto reads master request lines and node response payloads,
runs them through the protocol grammars and prints the parsed records,
accumulating session state (node, node list, capabilities) as it goes.

Lines are parsed as requests. Directives start with a backslash:
  \response   read the next payload and parse it as the pending response
  \session    print the accumulated session state
  \quit       leave the decoder`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, closeFunc, interactive, err := getInputReader(file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(ExitIOError)
			}
			defer func() { _ = closeFunc() }()

			r := newRepl(reader, os.Stdout, interactive, ShouldUseColor(noColor))
			return r.run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Read protocol exchange from a file instead of stdin ('-' for explicit stdin)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitInvalidArguments)
	}
}

// getInputReader handles the 3 modes of input:
// 1. Explicit stdin with -f -
// 2. Interactive or piped stdin (default)
// 3. File input
func getInputReader(file string) (io.Reader, func() error, bool, error) {
	if file == "" || file == "-" {
		return os.Stdin, func() error { return nil }, isTerminal(os.Stdin), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, false, fmt.Errorf("error opening file %s: %w", file, err)
	}

	closeFunc := func() error {
		return f.Close()
	}

	return f, closeFunc, false, nil
}

// isTerminal detects whether the reader is an interactive terminal rather
// than a pipe or redirected file.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
