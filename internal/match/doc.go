// Package match suggests the closest known name for a misspelled one.
//
// Names are normalized (case-folded, separators stripped) and compared by
// Levenshtein distance; Closest only suggests candidates similar enough to
// be a plausible typo.
package match
