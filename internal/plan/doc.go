// Package plan turns a validated mapping file into the files to generate.
//
// Resolution expands multi-policy functions into one function per policy,
// parses the shapes of every function and checks that its policy applies
// to every leaf pair, so generation itself cannot fail on a resolved plan.
package plan
