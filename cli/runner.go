package cli

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run parses args and executes the selected command, writing to stdout.
func Run(args []string) error {
	return RunWithOutput(os.Stdout, args)
}

// RunWithOutput parses args and executes the selected command, writing to w.
func RunWithOutput(w io.Writer, args []string) error {
	options := NewOptions(New(w))
	_, err := flags.ParseArgs(options, args)
	return err
}
