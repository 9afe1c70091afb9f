// Package diagnostic collects structured errors, warnings and infos produced
// while evaluating cast cases.
//
// Key capabilities:
//   - Failed expectations and strict cast failures as errors
//   - Lossy casts accepted by a permissive policy as warnings
//   - Exact casts as infos
package diagnostic
