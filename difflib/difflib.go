// Package difflib ranks strings by sequence similarity using go-difflib's
// SequenceMatcher.
package difflib

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity ratio for a close match.
const DefaultCutoff = 0.45

// Match is a candidate with its similarity ratio.
type Match struct {
	Value string
	Ratio float64
}

// Ratio returns the similarity of a and b in [0, 1]: twice the number of
// matching characters divided by the combined length.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// CloseMatches returns up to n possibilities whose similarity to word is at
// least cutoff, best first. Equal ratios keep the order of possibilities.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []Match {
	if n <= 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(chars(word))

	var matches []Match
	for _, p := range possibilities {
		m.SetSeq1(chars(p))
		// Cheap upper bounds first.
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if r := m.Ratio(); r >= cutoff {
			matches = append(matches, Match{Value: p, Ratio: r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Ratio > matches[j].Ratio
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// chars splits s into single-rune elements for the matcher.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
