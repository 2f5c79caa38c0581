package cli

import (
	"github.com/spf13/cobra"

	"minilang/pkg/interpreter"
)

func newASTCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the syntax tree of a program as YAML",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.loadProgram(cmd, args)
			if err != nil {
				return err
			}
			prog, err := interpreter.Parse(src)
			if err != nil {
				return err
			}
			data, err := interpreter.MarshalAST(prog)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
