package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"minilang/pkg/interpreter"
)

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a program",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.loadProgram(cmd, args)
			if err != nil {
				return err
			}
			tokens, err := interpreter.Lex(src)
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return err
		},
	}
}
