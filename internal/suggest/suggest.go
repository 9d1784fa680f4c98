// Package suggest finds the closest known word for a mistyped one.
package suggest

import (
	"slices"
	"strings"
)

// Closest returns the candidate most similar to s. Similarity counts the
// common prefix and suffix regardless of case. It returns false if no
// candidate shares at least half of s.
func Closest(s string, candidates []string) (string, bool) {
	best, bestScore := "", 0
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return c, true
		}
		if score := similarity(s, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore == 0 || bestScore*2 < len(s) {
		return "", false
	}
	return best, true
}

func similarity(a, b string) int {
	pair := []string{strings.ToLower(a), strings.ToLower(b)}
	prefix := len(CommonPrefix(pair))
	suffix := len(CommonSuffix(pair))
	if n := min(len(a), len(b)); prefix+suffix > n {
		// The prefix and the suffix overlap.
		suffix = n - prefix
	}
	return prefix + suffix
}

// CommonPrefix returns the longest common prefix of the strings in ss.
func CommonPrefix(ss []string) string {
	// This implementation is based on os.path.commonprefix in Python.
	if len(ss) == 0 {
		return ""
	}

	lo := slices.Min(ss)
	hi := slices.Max(ss)

	// The longest common prefix of the lexicographically smallest and largest
	// strings is the longest common prefix of all.
	for i := range []byte(lo) {
		if lo[i] != hi[i] {
			return lo[:i]
		}
	}
	return lo
}

// CommonSuffix returns the longest common suffix of the strings in ss.
func CommonSuffix(ss []string) string {
	reversed := make([]string, len(ss))
	for i, s := range ss {
		b := []byte(s)
		slices.Reverse(b)
		reversed[i] = string(b)
	}

	suffix := []byte(CommonPrefix(reversed))
	slices.Reverse(suffix)
	return string(suffix)
}
