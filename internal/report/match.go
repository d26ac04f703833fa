// match.go pairs officers with persons with significant control by name.
//
// The two registers spell the same person differently: officers are listed
// as "SMITH, John David" while PSCs read "Mr John David Smith". Names are
// normalised to a sorted token key first. When keys differ, the names are
// compared token by token: both must have the same number of tokens and
// every token must pair with one at least MinSimilarity alike. "John" and
// "Joan" are different people, so short tokens effectively need to match
// exactly; a slip in a long surname is still tolerated.

package report

import (
	"slices"
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// MinSimilarity is the lowest similarity accepted for each token of a fuzzy
// match.
const MinSimilarity = 0.85

// honorifics are dropped before comparison.
var honorifics = map[string]bool{
	"MR": true, "MRS": true, "MS": true, "MISS": true, "MX": true,
	"DR": true, "PROF": true, "PROFESSOR": true, "SIR": true, "DAME": true,
	"LORD": true, "LADY": true, "REV": true, "CBE": true, "OBE": true, "MBE": true,
}

// NameKey returns the comparison key for a person's name: upper-cased,
// punctuation removed, honorifics dropped, tokens sorted.
func NameKey(name string) string {
	return strings.Join(nameTokens(name), " ")
}

func nameTokens(name string) []string {
	fields := strings.FieldsFunc(strings.ToUpper(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, "'", "")
		if f == "" || honorifics[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	slices.Sort(tokens)
	return tokens
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)).
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	return 1 - float64(dmp.DiffLevenshtein(diffs))/float64(longest)
}

// tokenScore pairs each token of a with the most similar unused token of
// b and returns the weakest pairing. Names with different token counts
// score zero.
func tokenScore(a, b []string) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	used := make([]bool, len(b))
	score := 1.0
	for _, ta := range a {
		best, bestSim := -1, -1.0
		for j, tb := range b {
			if used[j] {
				continue
			}
			if sim := Similarity(ta, tb); sim > bestSim {
				best, bestSim = j, sim
			}
		}
		used[best] = true
		score = min(score, bestSim)
	}
	return score
}

// matcher finds the PSC that corresponds to an officer name.
type matcher struct {
	tokens [][]string // nameTokens per PSC, same order as the PSC list
}

func newMatcher(names []string) *matcher {
	m := &matcher{tokens: make([][]string, len(names))}
	for i, n := range names {
		m.tokens[i] = nameTokens(n)
	}
	return m
}

// find returns the index of the best matching PSC, or -1.
// Exact key matches win; otherwise the PSC with the best token score at
// or above MinSimilarity, earliest on ties.
func (m *matcher) find(name string) int {
	tokens := nameTokens(name)
	if len(tokens) == 0 {
		return -1
	}
	if i := slices.IndexFunc(m.tokens, func(t []string) bool { return slices.Equal(t, tokens) }); i >= 0 {
		return i
	}

	best, bestScore := -1, MinSimilarity
	for i, t := range m.tokens {
		if s := tokenScore(tokens, t); s >= bestScore && (best == -1 || s > bestScore) {
			best, bestScore = i, s
		}
	}
	return best
}
