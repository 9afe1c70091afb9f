package match

import "strings"

var separators = strings.NewReplacer("_", "", "-", "", " ", "", ".", "")

// Normalize lowercases s and strips the separators users mix freely in
// type and policy names, so that "Assumed-Exact" and "assumed_exact" match.
func Normalize(s string) string {
	return separators.Replace(strings.ToLower(strings.TrimSpace(s)))
}
