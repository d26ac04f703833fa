// ownership.go classifies PSC nature-of-control codes into percentage bands.
//
// Companies House publishes control as coded bands, never exact holdings.
// The table below is the complete set of band codes the estimate is based
// on; everything else (appointment rights, significant influence) conveys
// control without a percentage and is left unestimated.

package report

import "strings"

// Band is a percentage range with a fixed midpoint estimate.
type Band struct {
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Estimate float64 `json:"estimate"`
	Label    string  `json:"label"`
	Voting   bool    `json:"voting,omitempty"` // band derived from voting rights, not shares
}

// Contains reports whether pct lies within the band, bounds inclusive.
func (b Band) Contains(pct float64) bool {
	return pct >= b.Low && pct <= b.High
}

var (
	band25to50    = Band{Low: 25, High: 50, Estimate: 37.5, Label: "25% - 50%"}
	band50to75    = Band{Low: 50, High: 75, Estimate: 62.5, Label: "50% - 75%"}
	band75to100   = Band{Low: 75, High: 100, Estimate: 87.5, Label: "75% - 100%"}
	bandOver25    = Band{Low: 25, High: 100, Estimate: 62.5, Label: "more than 25%"}
	voting25to50  = Band{Low: 25, High: 50, Estimate: 37.5, Label: "25% - 50% (voting)", Voting: true}
	voting50to75  = Band{Low: 50, High: 75, Estimate: 62.5, Label: "50% - 75% (voting)", Voting: true}
	voting75to100 = Band{Low: 75, High: 100, Estimate: 87.5, Label: "75% - 100% (voting)", Voting: true}
	votingOver25  = Band{Low: 25, High: 100, Estimate: 62.5, Label: "more than 25% (voting)", Voting: true}
)

// bands maps a nature-of-control code, after suffix stripping, to its band.
var bands = map[string]Band{
	"ownership-of-shares-25-to-50-percent":            band25to50,
	"ownership-of-shares-50-to-75-percent":            band50to75,
	"ownership-of-shares-75-to-100-percent":           band75to100,
	"ownership-of-shares-more-than-25-percent":        bandOver25,
	"right-to-share-surplus-assets-25-to-50-percent":  band25to50,
	"right-to-share-surplus-assets-50-to-75-percent":  band50to75,
	"right-to-share-surplus-assets-75-to-100-percent": band75to100,
	"voting-rights-25-to-50-percent":                  voting25to50,
	"voting-rights-50-to-75-percent":                  voting50to75,
	"voting-rights-75-to-100-percent":                 voting75to100,
	"voting-rights-more-than-25-percent":              votingOver25,
}

// codeSuffixes qualify who holds the interest or the entity type. They do
// not change the band. Order matters: longer, compound suffixes come first.
var codeSuffixes = []string{
	"-as-persons-with-significant-control",
	"-limited-liability-partnership",
	"-registered-overseas-entity",
	"-as-trust",
	"-as-firm",
}

// Classify returns the band for a single nature-of-control code.
func Classify(code string) (Band, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	for {
		trimmed := c
		for _, suf := range codeSuffixes {
			trimmed = strings.TrimSuffix(trimmed, suf)
		}
		if trimmed == c {
			break
		}
		c = trimmed
	}
	b, ok := bands[c]
	return b, ok
}

// Estimate picks the band that best describes a PSC's holding.
// Share bands win over voting bands; within a kind the band with the higher
// upper bound wins, then the higher lower bound. Returns false when no code
// is recognised.
func Estimate(natures []string) (Band, bool) {
	var best Band
	found := false
	for _, n := range natures {
		b, ok := Classify(n)
		if !ok {
			continue
		}
		if !found || better(b, best) {
			best = b
			found = true
		}
	}
	return best, found
}

// better reports whether a should be preferred over b.
func better(a, b Band) bool {
	if a.Voting != b.Voting {
		return !a.Voting
	}
	if a.High != b.High {
		return a.High > b.High
	}
	return a.Low > b.Low
}
