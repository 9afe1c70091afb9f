// Package mapping provides the YAML schema, parsing and validation of
// mapping files, which list the cast functions to generate.
//
// # Schema Overview
//
//	version: "1"
//	package: units
//	output: casts_gen.go          # default file of every function
//	cast_pkg: example.com/cast    # optional
//	defaults:
//	  policy: strict
//	funcs:
//	  - name: ToBytes
//	    from: "[]u32"
//	    to: "[]u8"
//	  - name: ToSample
//	    from: f64
//	    to: i16
//	    policy: [closest, saturated] # one function per policy
//	    output: samples_gen.go
//
// Types are written as in the gen command: numeric short names such as u8
// or nonzero_i64, wrapped in *, [], [N] or map[K].
//
// A function listing several policies is generated once per policy, its
// name suffixed with the policy, e.g. ToSampleClosest.
package mapping
