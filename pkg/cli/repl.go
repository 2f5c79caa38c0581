package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"minilang/pkg/interpreter"
)

const continuationPrompt = ".. "

const replHelp = `Enter statements; they run as soon as braces balance and the input
ends with ';' or '}'. Variables persist between entries.
  :symbols   list declared variables
  :reset     discard all variables
  :help      show this help
  :quit      leave the session (Ctrl-D also works)
`

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				opts.config().Repl.Prompt, opts.colorEnabled())
			s.SetLogger(opts.logger(cmd))
			return s.Run()
		},
	}
}

// Session is an interactive loop over a single Interpreter. read() in an
// entry consumes the lines typed after it.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
	diag   *diagnostics
	logger *log.Logger
	ip     *interpreter.Interpreter
}

// NewSession returns a Session reading entries from in. Program output and
// prompts go to out, diagnostics to errOut.
func NewSession(in io.Reader, out, errOut io.Writer, prompt string, color bool) *Session {
	s := &Session{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
		diag:   newDiagnostics(errOut, color),
		logger: log.New(io.Discard, "", 0),
	}
	s.reset()
	return s
}

// SetLogger routes interpreter trace lines to l.
func (s *Session) SetLogger(l *log.Logger) {
	s.logger = l
	s.ip.Logger = l
}

func (s *Session) reset() {
	s.ip = interpreter.New(s.in, s.out)
	s.ip.Logger = s.logger
}

// Run reads entries until :quit or end of input.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "minilang repl. Type :help for commands.")

	var chunk strings.Builder
	for {
		if chunk.Len() == 0 {
			fmt.Fprint(s.out, s.prompt)
		} else {
			fmt.Fprint(s.out, continuationPrompt)
		}

		line, err := s.in.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if chunk.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				if s.command(trimmed) {
					return nil
				}
				continue
			}
		}

		chunk.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			chunk.WriteByte('\n')
		}
		src := interpreter.Preprocess(chunk.String())
		if src == "" {
			chunk.Reset()
			continue
		}
		if !chunkComplete(src) {
			continue
		}
		chunk.Reset()
		s.eval(src)
	}
}

// eval runs one entry as the body of a block.
func (s *Session) eval(src string) {
	if err := s.ip.Run("{" + src + "\n}"); err != nil {
		s.diag.render(err)
	}
}

// command handles a :-prefixed line and reports whether the session ends.
func (s *Session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":symbols", ":s":
		fmt.Fprint(s.out, s.ip.Symbols())
	case ":reset":
		s.reset()
		fmt.Fprintln(s.out, "symbols cleared")
	case ":help", ":h":
		fmt.Fprint(s.out, replHelp)
	default:
		s.diag.render(fmt.Errorf("unknown command %s (try :help)", cmd))
	}
	return false
}

// chunkComplete reports whether src can be evaluated: every brace opened
// outside a string literal is closed and the text ends a statement.
func chunkComplete(src string) bool {
	if braceDepth(src) > 0 {
		return false
	}
	trimmed := strings.TrimSpace(src)
	return strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}")
}

func braceDepth(src string) int {
	depth := 0
	inString := false
	escaped := false
	for _, r := range src {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case inString:
		case r == '{':
			depth++
		case r == '}':
			depth--
		}
	}
	return depth
}
