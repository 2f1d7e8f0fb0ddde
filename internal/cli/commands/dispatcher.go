package commands

import (
	"Corexus/internal/config"
	"context"
	"errors"
	"fmt"
	"strings"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Dispatch is the single entry point to execute CLI commands.
// args are the positional arguments left after flag parsing.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" || name == "--help" || name == "-h" { // corexus-cli help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
		topic := strings.ToLower(args[1])
		if c, ok := Get(topic); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return ExitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", topic)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}
