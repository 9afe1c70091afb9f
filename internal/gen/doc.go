// Package gen renders Go source files holding generated cast functions.
//
// Each function converts one value of a numeric or composite numeric type
// under a single policy; its body comes from the node package. Files are
// produced with text/template and go/format.
package gen
