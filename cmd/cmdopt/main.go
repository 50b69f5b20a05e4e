package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cardinalby/go-cmd-opt/internal/cli"
)

// main is the entrypoint for the cmdopt tool.
func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the command and returns the process exit code.
func run(outW, errW io.Writer, args []string) int {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := cli.Execute(args, outW, logLevel); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				_, _ = fmt.Fprintln(errW, exitErr.Message)
			}
			return exitErr.Code
		}
		_, _ = fmt.Fprintln(errW, err)
		return 1
	}
	return 0
}
