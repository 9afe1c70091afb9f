// Package casefile loads YAML files describing batches of numeric casts.
//
// A case file names the source and target types, the source value, the
// policy to cast with and, optionally, the value and classification the
// cast must produce:
//
//	version: "1"
//	defaults:
//	  policy: strict
//	cases:
//	  - name: narrowing
//	    from: u32
//	    to: u8
//	    value: 260
//	    policy: closest
//	    expect: 255
//	    expect_status: lossy
package casefile
