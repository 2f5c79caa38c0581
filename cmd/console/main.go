package main

import (
	"fmt"
	"log"
	"os"

	"minilang/pkg/cli"
	"minilang/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	s := cli.NewSession(os.Stdin, os.Stdout, os.Stderr, cfg.Repl.Prompt, cfg.ColorEnabled())
	if cfg.Verbose() {
		s.SetLogger(log.New(os.Stderr, "minilang: ", log.Lmsgprefix))
	}
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}
