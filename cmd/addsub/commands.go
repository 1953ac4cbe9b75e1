package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/addsub/internal/calc"
	"github.com/DjordjeVuckovic/addsub/internal/eval"
	"github.com/DjordjeVuckovic/addsub/internal/suite"
	"github.com/DjordjeVuckovic/addsub/internal/token"
	"github.com/DjordjeVuckovic/addsub/pkg/textenc"
)

type cli struct {
	Debug bool `short:"d" help:"Enable debug logging."`

	Eval  evalCmd  `cmd:"" default:"withargs" help:"Evaluate an expression (default command)."`
	Lines linesCmd `cmd:"" help:"Evaluate one expression per line read from stdin."`
	Suite suiteCmd `cmd:"" help:"Run a YAML suite of expression cases."`
}

type evalCmd struct {
	Tokens     bool     `short:"t" help:"Print the canonical token sequence before the result."`
	JSON       bool     `name:"json" short:"j" help:"Print the outcome as JSON."`
	Strict     bool     `help:"Reject values that no operator consumes."`
	Expression []string `arg:"" optional:"" help:"Expression to evaluate. When several are given the last one is used. Use -- before expressions starting with '-'."`
}

type evalOutput struct {
	Expression string `json:"expression"`
	Canonical  string `json:"canonical"`
	Result     *int32 `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (cmd *evalCmd) Run(rt *runtime) error {
	expr := ""
	if n := len(cmd.Expression); n > 0 {
		expr = cmd.Expression[n-1]
	}

	c := newCalculator(cmd.Strict)

	tokens, err := c.Tokenize(expr)
	out := evalOutput{Expression: expr, Canonical: token.Format(tokens)}
	tokenized := err == nil

	if err == nil {
		var result int32
		result, err = c.EvaluateTokens(tokens)
		if err == nil {
			out.Result = &result
		}
	}
	if err != nil {
		out.Error = err.Error()
	}

	if cmd.JSON {
		enc := json.NewEncoder(rt.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(out); encErr != nil {
			return fmt.Errorf("encode output: %w", encErr)
		}
		if err != nil {
			return errFailed
		}
		return nil
	}

	if cmd.Tokens && tokenized {
		fmt.Fprintf(rt.Stdout, "tokens: %s\n", out.Canonical)
	}

	if err != nil {
		fmt.Fprintf(rt.Stderr, "could not process given expression: %v\n", err)
		return errFailed
	}

	fmt.Fprintf(rt.Stdout, "result: %d\n", *out.Result)
	return nil
}

type linesCmd struct {
	Encoding string `short:"e" default:"utf8" enum:"utf8,cp437,cp850,iso-8859-1" help:"Encoding of stdin (${enum})."`
	Strict   bool   `help:"Reject values that no operator consumes."`
}

func (cmd *linesCmd) Run(rt *runtime) error {
	r, err := textenc.NewReader(rt.Stdin, cmd.Encoding)
	if err != nil {
		return err
	}

	c := newCalculator(cmd.Strict)
	failed := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			continue
		}

		result, err := c.Evaluate(line)
		if err != nil {
			failed++
			fmt.Fprintf(rt.Stdout, "%s ! %v\n", line, err)
			continue
		}
		fmt.Fprintf(rt.Stdout, "%s = %d\n", line, result)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if failed > 0 {
		slog.Debug("Some lines failed", "count", failed)
		return errFailed
	}
	return nil
}

type suiteCmd struct {
	Path string `arg:"" type:"existingfile" help:"Path to the suite YAML file."`
	JSON bool   `name:"json" short:"j" help:"Print the report as JSON."`
}

func (cmd *suiteCmd) Run(rt *runtime) error {
	s, err := suite.LoadFromFile(cmd.Path)
	if err != nil {
		return err
	}

	report := suite.Run(s)

	if cmd.JSON {
		err = suite.WriteJSON(report, rt.Stdout)
	} else {
		err = suite.WriteTable(report, rt.Stdout)
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return errFailed
	}
	return nil
}

func newCalculator(strict bool) *calc.Calculator {
	var opts []eval.Option
	if strict {
		opts = append(opts, eval.WithStrict())
	}
	return calc.New(calc.WithEvaluator(eval.New(opts...)))
}
