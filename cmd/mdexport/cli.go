package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mdexport/mdexport"
)

// ErrNoInputArgs is returned when no positional paths are given.
var ErrNoInputArgs = errors.New("usage: mdexport [flags] <path>...")

// converter is the interface for the conversion service.
type converter interface {
	ProcessInput(paths []string) (*mdexport.ProcessedInput, error)
	Convert(input *mdexport.ProcessedInput) (*mdexport.ConvertResult, error)
	Close() error
}

// run resolves configuration, builds the service, and executes the
// two-phase discover/convert pipeline.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	if len(flags.inputs) == 0 {
		return ErrNoInputArgs
	}

	opts, err := serviceOptions(flags)
	if err != nil {
		return err
	}

	svc := mdexport.NewService(opts...)
	defer func() { _ = svc.Close() }()

	return runWith(flags, svc, stdout, stderr)
}

// runWith drives an already-constructed service; split out for tests.
func runWith(flags *cliFlags, svc converter, stdout, stderr io.Writer) error {
	input, err := svc.ProcessInput(flags.inputs)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Found %d markdown file(s), %d image(s)\n",
			len(input.MarkdownFiles), len(input.ImageFiles))
		fmt.Fprintf(stderr, "Output root: %s\n", input.Root)
	}

	result, err := svc.Convert(input)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s\n", result.OutputPath)
	return nil
}

// serviceOptions builds service options from the CLI flags.
func serviceOptions(flags *cliFlags) ([]mdexport.Option, error) {
	if flags.config == "" {
		return nil, nil
	}
	cfg, err := mdexport.LoadConfig(flags.config)
	if err != nil {
		return nil, err
	}
	return []mdexport.Option{mdexport.WithConfig(cfg)}, nil
}
