// Command exprctl is a small CLI over the flint engine, grounded in the
// teacher's inspection-flag style (cmd/barn's -eval/-list-verbs/...
// flags) but reshaped into subcommands since this tool's surface --
// eval, validate, compile-check, each needing their own flags -- doesn't
// fit one flat flag set the way a single-purpose server binary does.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"

	"flint/engine"
	"flint/registry"
	"flint/trace"
)

func main() {
	app := &cli.App{
		Name:  "exprctl",
		Usage: "parse, compile, and evaluate flint expressions",
		Commands: []*cli.Command{
			evalCommand(),
			validateCommand(),
			compileCheckCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, rootCause(err))
		os.Exit(1)
	}
}

func registryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "registry",
		Usage: "path to a YAML registry config (see engine.LoadRegistryConfig); defaults to every builtin pack",
	}
}

func traceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "trace",
		Usage: "log every function call (name, arguments, result, duration) to stderr",
	}
}

func loadHandle(c *cli.Context) (*engine.Handle, error) {
	path := c.String("registry")
	var h *engine.Handle
	if path == "" {
		h = engine.DefaultHandle()
	} else {
		loaded, err := engine.LoadRegistryConfig(path)
		if err != nil {
			return nil, errors.Wrapf(err, "loading registry config %s", path)
		}
		h = loaded
	}

	if c.Bool("trace") {
		trace.Init(true, nil, os.Stderr)
		h = traceWrap(h)
	}
	return h, nil
}

// traceWrap rebuilds a Handle's registry with every function instrumented
// by trace.Wrap, by reading back every name already bound in h's registry
// and re-registering it traced under a fresh registry.Registry -- the
// simplest way to retrofit tracing onto an already-built Handle, since
// Registry exposes only Resolve/Names, not its backing function list.
func traceWrap(h *engine.Handle) *engine.Handle {
	names := h.Registry.Names()
	funcs := make([]registry.FunctionImpl, 0, len(names))
	for _, name := range names {
		if fn, ok := h.Registry.Resolve(name); ok {
			funcs = append(funcs, fn)
		}
	}
	return &engine.Handle{
		Registry:     registry.New(trace.WrapAll(funcs), nil),
		CacheEnabled: h.CacheEnabled,
		CacheLimit:   h.CacheLimit,
	}
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate an expression against a JSON scope and print the result",
		ArgsUsage: "<expression>",
		Flags: []cli.Flag{
			registryFlag(),
			traceFlag(),
			&cli.StringFlag{Name: "scope", Value: "{}", Usage: "JSON scope object"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one expression argument", 2)
			}
			h, err := loadHandle(c)
			if err != nil {
				return err
			}
			out, eerr := engine.EvalJSON(c.Args().First(), c.String("scope"), h)
			if eerr != nil {
				return cli.Exit(eerr.Error(), 1)
			}
			fmt.Println(gjson.Get(out, "result").Raw)
			return nil
		},
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check an expression compiles, printing nothing on success",
		ArgsUsage: "<expression>",
		Flags:     []cli.Flag{registryFlag(), traceFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one expression argument", 2)
			}
			h, err := loadHandle(c)
			if err != nil {
				return err
			}
			if verr := engine.Validate(c.Args().First(), h); verr != nil {
				return cli.Exit(verr.Error(), 1)
			}
			return nil
		},
	}
}

func compileCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile-check",
		Usage:     "compile every expression on stdin (one per line) and report failures",
		ArgsUsage: " ",
		Flags:     []cli.Flag{registryFlag()},
		Action: func(c *cli.Context) error {
			h, err := loadHandle(c)
			if err != nil {
				return err
			}
			lines, rerr := readLines(os.Stdin)
			if rerr != nil {
				return rerr
			}
			failed := 0
			for i, line := range lines {
				if line == "" {
					continue
				}
				if cerr := engine.Validate(line, h); cerr != nil {
					failed++
					fmt.Fprintf(os.Stderr, "line %d: %s: %s\n", i+1, line, cerr.Error())
				}
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d expression(s) failed to compile", failed), 1)
			}
			fmt.Printf("%d expression(s) compiled successfully\n", len(lines))
			return nil
		},
	}
}

func rootCause(err error) string {
	return errors.Cause(err).Error()
}

// readLines is split out from compileCheckCommand's Action purely so it
// can take an io.Reader, which keeps the command testable without
// swapping os.Stdin.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
