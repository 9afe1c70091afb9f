package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"numcast/internal/analyze"
	"numcast/options"
)

func runScan(ctx context.Context, e *env, args []string) int {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	dir := fs.String("dir", "", "directory the package patterns are resolved in")
	tests := fs.Bool("tests", false, "include test files")
	all := fs.Bool("all", false, "also list lossless conversions")
	suggest := fs.String("suggest", "", "print a replacement cast under this policy")

	if code, ok := parseFlags(fs, e, args); !ok {
		return code
	}

	var policy options.Policy
	if *suggest != "" {
		var ok bool
		if policy, ok = parsePolicy(e, *suggest); !ok {
			return ExitInvalidInvocation
		}
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	a := analyze.NewAnalyzer(*dir)
	a.Tests = *tests

	report, err := a.LoadPackages(ctx, patterns...)
	if err != nil {
		e.errorf("%v", err)
		return ExitConfigError
	}

	lossy := report.Lossy()
	e.log.Info("packages scanned",
		"packages", len(report.Packages),
		"conversions", len(report.Conversions),
		"lossy", len(lossy),
	)

	shown := lossy
	if *all {
		shown = report.Conversions
	}

	for _, c := range shown {
		fmt.Fprintln(e.stdout, c.String())

		if policy == 0 || c.IsLossless() {
			continue
		}

		lines, err := c.Suggest(policy, "v")
		if err != nil {
			fmt.Fprintf(e.stdout, "\t%v\n", err)
			continue
		}

		fmt.Fprintf(e.stdout, "\t%s\n", strings.Join(lines, "\n\t"))
	}

	fmt.Fprintf(e.stdout, "%d conversion(s) in %d package(s), %d may lose information\n",
		len(report.Conversions), len(report.Packages), len(lossy))

	if len(lossy) > 0 {
		return ExitFailure
	}

	return ExitSuccess
}
