package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"numcast/cast"
	"numcast/internal/common"
	"numcast/internal/literal"
	"numcast/options"
	"numcast/primitive"
	"numcast/utils"
)

const allPolicies = "all"

// pairFlags are the type selection flags shared by classify and gen.
type pairFlags struct {
	from, to, pair string
}

func (p *pairFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.from, "from", "", "source type, e.g. u32 or nonzero_i64")
	fs.StringVar(&p.to, "to", "", "target type")
	fs.StringVar(&p.pair, "pair", "", `source and target as "from->to"; overrides -from and -to`)
}

func (p *pairFlags) names() (from, to string, err error) {
	from, to = p.from, p.to
	if p.pair != "" {
		var ok bool
		if from, to, ok = utils.SplitPair(p.pair); !ok {
			return "", "", fmt.Errorf("invalid -pair %q: want from->to", p.pair)
		}
	}

	if from == "" || to == "" {
		return "", "", fmt.Errorf("both source and target types are required")
	}

	return from, to, nil
}

func (p *pairFlags) types() (from, to primitive.Type, err error) {
	fromName, toName, err := p.names()
	if err != nil {
		return from, to, err
	}

	if from, err = primitive.ParseType(fromName); err != nil {
		return from, to, err
	}

	to, err = primitive.ParseType(toName)
	return from, to, err
}

func runClassify(_ context.Context, e *env, args []string) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	var pf pairFlags
	pf.register(fs)
	policyName := fs.String("policy", "strict", `cast policy, or "all" to try every policy`)

	if code, ok := parseFlags(fs, e, args); !ok {
		return code
	}

	text, ok := common.Single(fs.Args())
	if !ok {
		e.errorf("classify takes exactly one value")
		return ExitInvalidInvocation
	}

	from, to, err := pf.types()
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	v, err := literal.Parse(from, text)
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	log := e.log.WithPair(from.ShortName(), to.ShortName())

	if strings.EqualFold(*policyName, allPolicies) {
		return classifyAll(e, from, to, v)
	}

	policy, ok := parsePolicy(e, *policyName)
	if !ok {
		return ExitInvalidInvocation
	}

	res, err := cast.Eval(from, to, v, policy)
	if err != nil {
		e.errorf("%v", err)
		return ExitInvalidInvocation
	}

	log.Debug("value classified", "value", literal.Format(v), "policy", policy.String(), "status", res.Status.String())

	fmt.Fprintf(e.stdout, "status: %s\n", res.Status)
	if res.Err != nil {
		e.errorf("%v", res.Err)
		return ExitFailure
	}

	fmt.Fprintf(e.stdout, "value: %s\n", literal.Format(res.Value))

	return ExitSuccess
}

func classifyAll(e *env, from, to primitive.Type, v any) int {
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POLICY\tSTATUS\tRESULT")

	for _, policy := range options.Policies() {
		res, err := cast.Eval(from, to, v, policy)
		if err != nil {
			e.errorf("%v", err)
			return ExitInvalidInvocation
		}

		result := literal.Format(res.Value)
		if res.Err != nil {
			result = "error: " + res.Err.Error()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", policy, res.Status, result)
	}

	if err := tw.Flush(); err != nil {
		e.errorf("%v", err)
		return ExitFailure
	}

	return ExitSuccess
}
