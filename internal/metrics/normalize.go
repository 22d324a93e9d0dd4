// ABOUTME: Exercise name normalization used as the cross-session join key.
// ABOUTME: Two names denote the same exercise iff their normalized forms match.
package metrics

import "strings"

// NormalizeName trims surrounding whitespace and lower-cases an exercise
// name. This is the only identity notion for exercises: every lookup in
// this package matches entries by normalized name, never by raw string.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
