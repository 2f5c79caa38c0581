package cli

import (
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program",
		Long: `Run preprocesses, parses and evaluates FILE. print output goes to
stdout and read() consumes whitespace-trimmed lines from stdin. Nothing
is evaluated if the program has a lexical or syntax error.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, opts, args)
		},
	}
}

func runProgram(cmd *cobra.Command, opts *options, args []string) error {
	src, err := opts.loadProgram(cmd, args)
	if err != nil {
		return err
	}
	return newInterpreter(cmd, opts).Run(src)
}
