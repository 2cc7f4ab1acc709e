package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// cliFlags holds parsed command-line options and positional input paths.
type cliFlags struct {
	config  string
	verbose bool
	version bool
	inputs  []string
}

func parseFlags(args []string) (*cliFlags, error) {
	fs := pflag.NewFlagSet("mdexport", pflag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVarP(&flags.config, "config", "c", "", "path to YAML config file")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mdexport [flags] <path>...")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Converts markdown files, directories, or zip archives into a single PDF.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		fmt.Fprint(os.Stderr, fs.FlagUsages())
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	flags.inputs = fs.Args()
	return flags, nil
}
