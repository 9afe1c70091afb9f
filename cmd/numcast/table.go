package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"numcast/primitive"
)

type tableRow struct {
	From      string   `yaml:"from"`
	Lossless  []string `yaml:"lossless"`
	SameWidth []string `yaml:"same_width,omitempty"`
}

func runTable(_ context.Context, e *env, args []string) int {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	format := fs.String("format", "text", "output format: text or yaml")
	nonZero := fs.Bool("nonzero", false, "include the non-zero integer types")

	if code, ok := parseFlags(fs, e, args); !ok {
		return code
	}

	if fs.NArg() > 0 {
		e.errorf("table takes no arguments")
		return ExitInvalidInvocation
	}

	types := tableTypes(*nonZero)

	var err error
	switch strings.ToLower(*format) {
	case "text":
		err = writeTableText(e.stdout, types)
	case "yaml":
		err = writeTableYAML(e.stdout, types)
	default:
		e.errorf("invalid -format %q: want text or yaml", *format)
		return ExitInvalidInvocation
	}

	if err != nil {
		e.errorf("%v", err)
		return ExitFailure
	}

	return ExitSuccess
}

func tableTypes(nonZero bool) []primitive.Type {
	var res []primitive.Type
	for _, t := range primitive.Types() {
		if t.NonZero && !nonZero {
			continue
		}

		res = append(res, t)
	}

	return res
}

// tableRows groups the lossless and same-width pairs by source type.
func tableRows(types []primitive.Type) []tableRow {
	rows := make([]tableRow, 0, len(types))
	for _, from := range types {
		row := tableRow{From: from.ShortName(), Lossless: []string{}}
		for _, to := range types {
			category := primitive.Categorize(from, to)
			if category&primitive.CategorySafeNumber != 0 {
				row.Lossless = append(row.Lossless, to.ShortName())
			}
			if category&primitive.CategorySameWidth != 0 && from != to {
				row.SameWidth = append(row.SameWidth, to.ShortName())
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// writeTableText prints a matrix with sources as rows and targets as
// columns: L marks a lossless pair, = a lossy pair of equal width.
func writeTableText(w io.Writer, types []primitive.Type) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	fmt.Fprint(tw, "from\\to")
	for _, to := range types {
		fmt.Fprintf(tw, "\t%s", to.ShortName())
	}
	fmt.Fprintln(tw)

	for _, from := range types {
		fmt.Fprint(tw, from.ShortName())
		for _, to := range types {
			fmt.Fprintf(tw, "\t%s", cell(primitive.Categorize(from, to)))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func cell(category primitive.CategoryEnum) string {
	switch {
	case category&primitive.CategorySafeNumber != 0:
		return "L"
	case category&primitive.CategorySameWidth != 0:
		return "="
	default:
		return "."
	}
}

func writeTableYAML(w io.Writer, types []primitive.Type) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(tableRows(types)); err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	return enc.Close()
}
