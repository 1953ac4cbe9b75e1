package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// errFailed marks a run that already reported its failure to stderr.
var errFailed = errors.New("failed")

type runtime struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func main() {
	rt := &runtime{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}

	var c cli
	ctx := kong.Parse(&c,
		kong.Name("addsub"),
		kong.Description("Evaluate addition/subtraction expressions."),
		kong.UsageOnError(),
	)

	if err := run(ctx, &c, rt); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(rt.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx *kong.Context, c *cli, rt *runtime) error {
	level := slog.LevelWarn
	if c.Debug {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)

	return ctx.Run(rt)
}
