// Package runner evaluates resolved cast cases and reports the outcome of
// each as diagnostics.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"numcast/cast"
	"numcast/internal/casefile"
	"numcast/internal/diagnostic"
	"numcast/internal/literal"
	"numcast/options"
	"numcast/utils"
)

// Result is the evaluation of one case.
type Result struct {
	Case       casefile.Resolved
	Evaluation cast.Evaluation
	// Passed is false when the case produced an error diagnostic.
	Passed bool
}

// Report collects the results of a run in case order.
type Report struct {
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Failed returns the number of cases that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}

	return n
}

type Options struct {
	// Workers bounds the number of cases evaluated concurrently; zero means
	// GOMAXPROCS.
	Workers int
}

// RunFile loads, resolves and runs a case file. Cases that fail to resolve
// are reported in the diagnostics and skipped.
func RunFile(ctx context.Context, path string, opts Options) (*Report, error) {
	f, err := casefile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	cases, diags := casefile.Resolve(f)

	report, err := Run(ctx, cases, opts)
	if err != nil {
		return nil, err
	}

	// resolution problems come first, as they would in the file
	diags.Merge(report.Diagnostics)
	report.Diagnostics = *diags

	return report, nil
}

// Run evaluates cases concurrently. Each case is independent, so results
// and diagnostics are assembled in case order once all are done.
func Run(ctx context.Context, cases []casefile.Resolved, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = utils.Clamp(1, workers, max(len(cases), 1))

	results := make([]Result, len(cases))
	diags := make([]diagnostic.Diagnostics, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], diags[i] = Check(cases[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run cases: %w", err)
	}

	report := &Report{Results: results}
	for _, d := range diags {
		report.Diagnostics.Merge(d)
	}

	return report, nil
}

// Check evaluates a single case against its expectations.
func Check(c casefile.Resolved) (Result, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics
	res := Result{Case: c}
	pair := c.Pair()

	eval, err := cast.Eval(c.From, c.To, c.Value, c.Policy)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidCase, err.Error(), pair, c.Name)
		return res, diags
	}

	res.Evaluation = eval

	if c.ExpectStatus != 0 && c.ExpectStatus != eval.Status {
		diags.AddError(diagnostic.CodeStatusMismatch,
			fmt.Sprintf("expected %s cast, got %s", c.ExpectStatus, eval.Status), pair, c.Name)
	}

	switch {
	case eval.Err != nil:
		reportFailure(&diags, c, eval)

	case c.Expect != nil && !literal.Equal(c.Expect, eval.Value):
		diags.AddError(diagnostic.CodeValueMismatch,
			fmt.Sprintf("expected %s, got %s", literal.Format(c.Expect), literal.Format(eval.Value)), pair, c.Name)

	case eval.Status == cast.StatusExact:
		diags.AddInfo(diagnostic.CodeCastExact,
			fmt.Sprintf("%s -> %s", literal.Format(c.Value), literal.Format(eval.Value)), pair, c.Name)

	case eval.Status == cast.StatusLossy:
		diags.AddWarning(diagnostic.CodeCastLossy,
			fmt.Sprintf("%s -> %s accepted by policy %s", literal.Format(c.Value), literal.Format(eval.Value), c.Policy), pair, c.Name)

	default:
		diags.AddWarning(diagnostic.CodeCastFailed,
			fmt.Sprintf("%s has no %s value, %s substituted by policy %s", literal.Format(c.Value), c.To, literal.Format(eval.Value), c.Policy), pair, c.Name)
	}

	res.Passed = diags.IsValid()
	return res, diags
}

// reportFailure records a cast that produced no value. A strict failure
// the case expects is not an error.
func reportFailure(diags *diagnostic.Diagnostics, c casefile.Resolved, eval cast.Evaluation) {
	pair := c.Pair()

	switch {
	case errors.Is(eval.Err, cast.ErrAssumedExact):
		diags.AddError(diagnostic.CodeAssumptionFailed, eval.Err.Error(), pair, c.Name).
			Suggest("use policy %s to report the loss", options.PolicyStrict)

	case errors.Is(eval.Err, cast.ErrBitwiseWidth),
		errors.Is(eval.Err, cast.ErrNotStaticLossless),
		errors.Is(eval.Err, cast.ErrNotSaturating):
		diags.AddError(diagnostic.CodePolicyRejected, eval.Err.Error(), pair, c.Name).
			Suggest("use policy %s or %s", options.PolicyStrict, options.PolicyClosest)

	case c.ExpectStatus == eval.Status && c.Expect == nil:
		diags.AddInfo(expectedCode(eval.Status), eval.Err.Error(), pair, c.Name)

	case eval.Status == cast.StatusUnrepresentable:
		diags.AddError(diagnostic.CodeCastFailed, eval.Err.Error(), pair, c.Name).
			Suggest("use policy %s to substitute the nearest non-zero value", options.PolicyClosest)

	default:
		diags.AddError(diagnostic.CodeCastLossy, eval.Err.Error(), pair, c.Name).
			Suggest("use policy %s or %s to accept the loss", options.PolicyClosest, options.PolicyLossy)
	}
}

func expectedCode(status cast.Status) string {
	if status == cast.StatusUnrepresentable {
		return diagnostic.CodeCastFailed
	}

	return diagnostic.CodeCastLossy
}
