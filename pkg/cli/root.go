package cli

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"minilang/pkg/config"
	"minilang/pkg/interpreter"
	"minilang/pkg/utils"
)

// options carries the persistent flags and the configuration resolved
// from them before any subcommand runs.
type options struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
}

// NewRootCommand builds the minilang command tree.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *options) {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "minilang [file]",
		Short: "Interpreter for the minilang teaching language",
		Long: `minilang runs programs written in a small statically typed language
with i32, bool and str variables, if/while control flow, print and read.

A program is a single { ... } block stored in a file with the configured
extension (default .zig). Running "minilang FILE" is the same as
"minilang run FILE".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./minilang.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace pipeline stages on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	rootCmd.AddCommand(
		newRunCommand(opts),
		newTokensCommand(opts),
		newASTCommand(opts),
		newCheckCommand(opts),
		newReplCommand(opts),
	)
	return rootCmd, opts
}

// Execute runs the command tree against os.Args and renders any error.
func Execute() error {
	cmd, opts := newRootCommand()
	return executeCommand(cmd, opts)
}

func executeCommand(cmd *cobra.Command, opts *options) error {
	err := cmd.Execute()
	if err != nil {
		newDiagnostics(cmd.ErrOrStderr(), opts.colorEnabled()).render(err)
	}
	return err
}

func (o *options) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

func (o *options) config() *config.Config {
	if o.cfg == nil {
		return config.Default()
	}
	return o.cfg
}

func (o *options) colorEnabled() bool {
	return !o.noColor && o.config().ColorEnabled()
}

// logger returns the pipeline trace logger for cmd.
func (o *options) logger(cmd *cobra.Command) *log.Logger {
	if o.verbose || o.config().Verbose() {
		return log.New(cmd.ErrOrStderr(), "minilang: ", log.Lmsgprefix)
	}
	return log.New(io.Discard, "", 0)
}

// loadProgram validates args and returns the preprocessed source.
func (o *options) loadProgram(cmd *cobra.Command, args []string) (string, error) {
	path, err := utils.SourcePath(args, o.config().Source.Extension)
	if err != nil {
		return "", err
	}
	src, err := utils.LoadSource(path)
	if err != nil {
		return "", err
	}
	o.logger(cmd).Printf("loaded %s (%d bytes after preprocessing)", path, len(src))
	return src, nil
}

func newInterpreter(cmd *cobra.Command, opts *options) *interpreter.Interpreter {
	ip := interpreter.New(cmd.InOrStdin(), cmd.OutOrStdout())
	ip.Logger = opts.logger(cmd)
	return ip
}
