// Package main provides the numcast command.
//
// numcast classifies numeric casts between Go types and emits Go code that
// performs them through the cast package:
//   - classify: cast a single value and print its status
//   - table: print which type pairs are lossless for every value
//   - check: run a YAML case file and report mismatches
//   - gen: print the statements casting one variable into another
//   - scan: find Go conversions between numeric types that may lose values
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"numcast/internal/common"
	"numcast/internal/match"
	"numcast/options"
)

// Exit codes.
const (
	ExitSuccess           = 0
	ExitFailure           = 1 // a cast or case failed
	ExitInvalidInvocation = 2 // bad flags or arguments
	ExitConfigError       = 3 // the case file could not be loaded
)

type env struct {
	stdout io.Writer
	stderr io.Writer
	log    *Logger
}

func (e *env) errorf(format string, args ...any) {
	fmt.Fprintf(e.stderr, "numcast: "+format+"\n", args...)
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, args []string) int
}

var commands = []command{
	{"classify", "cast a single value and print its status", runClassify},
	{"table", "print the statically lossless type pairs", runTable},
	{"check", "run a YAML case file", runCheck},
	{"gen", "print Go statements performing a cast", runGen},
	{"scan", "report numeric conversions in Go packages", runScan},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numcast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "warn", "minimum log level: debug, info, warn, error or off")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}

		return ExitInvalidInvocation
	}

	e := &env{stdout: stdout, stderr: stderr}

	logger, err := newLoggerFromFlags(stderr, *logLevel, *logFormat)
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	name, ok := common.First(fs.Args())
	if !ok {
		fs.Usage()
		return ExitInvalidInvocation
	}

	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		e.errorf("unknown command %q", name)
		names := make([]string, len(commands))
		for i, c := range commands {
			names[i] = c.name
		}

		if s, ok := match.Closest(name, names); ok {
			e.errorf("did you mean %q?", s)
		}

		return ExitInvalidInvocation
	}

	e.log = logger.WithCommand(name)

	return commands[i].run(ctx, e, common.Rest(fs.Args()))
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "usage: numcast [flags] <command> [command flags] [args]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-9s %s\n", c.name, c.summary)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "flags:")
	fs.PrintDefaults()
}

// parsePolicy parses a -policy value, suggesting the closest policy name on
// error.
func parsePolicy(e *env, name string) (options.Policy, bool) {
	p, err := options.ParsePolicy(name)
	if err == nil {
		return p, true
	}

	e.errorf("%v", err)

	names := make([]string, 0, options.PolicyTotal)
	for _, p := range options.Policies() {
		names = append(names, p.String())
	}

	if s, ok := match.Closest(name, names); ok {
		e.errorf("did you mean %q?", s)
	}

	return 0, false
}

// parseFlags parses command flags, mapping -help to success.
func parseFlags(fs *flag.FlagSet, e *env, args []string) (code int, ok bool) {
	fs.SetOutput(e.stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess, false
		}

		return ExitInvalidInvocation, false
	}

	return ExitSuccess, true
}
