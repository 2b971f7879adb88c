// Package levenshtein implements cpumark.Matcher with a weighted string
// similarity built on edit distances from github.com/agnivade/levenshtein.
//
// Scores are in [0,100]. The weighting combines a plain ratio, a best
// substring ratio and two token-based ratios, scaled down when the strings
// differ a lot in length, so that "Ryzen 5 1600" scores high against
// "AMD Ryzen 5 1600" while unrelated names stay low.
package levenshtein

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/fwojciec/cpumark"
)

const (
	// tokenScale discounts token-based ratios against the plain ratio.
	tokenScale = 0.95

	// partialScale discounts substring ratios for strings of very
	// different length; longScale applies past longLenRatio.
	partialScale = 0.9
	longScale    = 0.6

	partialLenRatio = 1.5
	longLenRatio    = 8.0
)

var _ cpumark.Matcher = (*Matcher)(nil)

// Matcher ranks names by weighted similarity.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the choices scoring at least cutoff against query, best
// first. Equal scores keep choice order.
func (m *Matcher) Match(query string, choices []string, limit int, cutoff float64) []cpumark.Match {
	q := normalize(query)
	if q == "" {
		return nil
	}

	var matches []cpumark.Match
	for i, choice := range choices {
		score := weightedRatio(q, normalize(choice))
		if score < cutoff {
			continue
		}
		matches = append(matches, cpumark.Match{Name: choice, Score: score, Index: i})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Score returns the similarity of a and b in [0,100].
func Score(a, b string) float64 {
	return weightedRatio(normalize(a), normalize(b))
}

// normalize lowercases s, replaces everything except letters and digits
// with spaces and collapses whitespace.
func normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func weightedRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	score := ratio(a, b)
	if lenRatio < partialLenRatio {
		score = math.Max(score, math.Max(tokenSortRatio(a, b), tokenSetRatio(a, b))*tokenScale)
		return round(score)
	}

	scale := partialScale
	if lenRatio >= longLenRatio {
		scale = longScale
	}
	score = math.Max(score, partialRatioOf(a, b)*scale)
	score = math.Max(score, partialTokenRatio(a, b)*tokenScale*scale)
	return round(score)
}

// ratio is the edit similarity of a and b: 100 for equal strings, 0 when
// every character has to change.
func ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(d)/float64(max(la, lb)))
}

// partialRatioOf is the best ratio of the shorter string against every
// equally long window of the longer one.
func partialRatioOf(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	s := string(short)
	best := 0.0
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

func tokenSortRatio(a, b string) float64 {
	return ratio(sortedTokens(a), sortedTokens(b))
}

// tokenSetRatio compares the shared tokens of a and b with each side's
// shared tokens plus its own remainder.
func tokenSetRatio(a, b string) float64 {
	shared, onlyA, onlyB := splitTokens(a, b)
	if len(shared) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	base := strings.Join(shared, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	return math.Max(ratio(base, withA), math.Max(ratio(base, withB), ratio(withA, withB)))
}

func partialTokenRatio(a, b string) float64 {
	shared, _, _ := splitTokens(a, b)
	if len(shared) > 0 {
		return 100
	}
	return partialRatioOf(sortedTokens(a), sortedTokens(b))
}

// splitTokens returns the sorted unique tokens found in both a and b, only
// in a, and only in b.
func splitTokens(a, b string) (shared, onlyA, onlyB []string) {
	setA, setB := tokenSet(a), tokenSet(b)
	for t := range setA {
		if setB[t] {
			shared = append(shared, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range setB {
		if !setA[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return shared, onlyA, onlyB
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.Fields(s) {
		set[t] = true
	}
	return set
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func round(score float64) float64 {
	return math.Round(score*100) / 100
}
