package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"numcast/internal/common"
	"numcast/internal/diagnostic"
	"numcast/internal/runner"
	"numcast/utils"
)

const maxWorkers = 1024

func runCheck(ctx context.Context, e *env, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "cases evaluated concurrently; 0 means GOMAXPROCS")
	verbose := fs.Bool("v", false, "also print info diagnostics")

	if code, ok := parseFlags(fs, e, args); !ok {
		return code
	}

	path, ok := common.Single(fs.Args())
	if !ok {
		e.errorf("check takes exactly one case file")
		return ExitInvalidInvocation
	}

	if !utils.IsInRange(0, *workers, maxWorkers) {
		e.errorf("-workers must be between 0 and %d", maxWorkers)
		return ExitInvalidInvocation
	}

	start := time.Now()
	report, err := runner.RunFile(ctx, path, runner.Options{Workers: *workers})
	e.log.LogRun(ctx, path, report, time.Since(start), err)

	if err != nil {
		e.errorf("%v", err)
		if errors.Is(err, context.Canceled) {
			return ExitFailure
		}

		return ExitConfigError
	}

	for _, res := range report.Results {
		e.log.LogCase(ctx, res)
	}

	printDiagnostics(e.stdout, &report.Diagnostics, *verbose)

	fmt.Fprintf(e.stdout, "%d case(s), %d failed: %s\n",
		len(report.Results), report.Failed(), report.Diagnostics.Summary())

	if report.Diagnostics.HasErrors() {
		return ExitFailure
	}

	return ExitSuccess
}

// printDiagnostics writes d to w, one per line; infos only when verbose.
func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics, verbose bool) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag.String())
	}
}
