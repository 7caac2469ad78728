// Package extract converts free-form demographic analysis prose into
// the structured breakdown consumed by blind-spot detection.
package extract

import (
	"regexp"
	"strconv"

	"github.com/evidenceml/blindspot/apimodels"
)

// CanonicalFindings is the static critical-findings list attached to
// every extraction. Per-response parsing of findings is not attempted
// yet; replace the Extractor's Findings source to change that.
var CanonicalFindings = []string{
	"Pregnant women are systematically excluded from clinical studies",
	"Pediatric populations (0-18) are significantly under-represented",
	"African and other non-Western populations are rarely studied",
	"Very elderly patients (>75) appear in few study cohorts",
}

type label struct {
	key string
	re  *regexp.Regexp
}

// pattern matches the prose label followed, within the same textual
// neighborhood, by an integer immediately preceding a percent sign.
func pattern(key, prose string) label {
	return label{key: key, re: regexp.MustCompile(regexp.QuoteMeta(prose) + `[^%\d]{0,40}(\d+)%`)}
}

// Prose labels as they appear in analysis text. Each pattern carries
// enough of the label to avoid cross-matching labels that share a
// substring: "Elderly (65-75)" never matches inside "Very Elderly
// (>75)", and "Male participants" never matches inside "Female
// participants" (matching is case-sensitive).
var (
	ageLabels = []label{
		pattern("0-18", "Pediatric (0-18)"),
		pattern("18-40", "Young Adults (18-40)"),
		pattern("40-65", "Middle-aged (40-65)"),
		pattern("65-75", "Elderly (65-75)"),
		pattern(">75", "Very Elderly (>75)"),
		pattern("not_specified", "Age not specified"),
	}
	genderLabels = []label{
		pattern("male", "Male participants"),
		pattern("female", "Female participants"),
		pattern("not_specified", "Gender not specified"),
	}
	pregnancyLabels = []label{
		pattern("pregnant", "Pregnant women"),
		pattern("not_pregnant", "Non-pregnant women"),
		pattern("not_specified", "Pregnancy status not specified"),
	}
	geographyLabels = []label{
		pattern("North America", "North America"),
		pattern("Europe", "Europe"),
		pattern("Asia", "Asia"),
		pattern("Africa", "Africa"),
		pattern("Other", "Other regions"),
		pattern("not_specified", "Region not specified"),
	}
)

// Extractor parses analysis text into a DemographicBreakdown. Extract
// is pure: no I/O, no hidden state, deterministic for a given text.
type Extractor struct {
	// Findings supplies the critical-findings list for a response
	// text. Defaults to the static canonical list.
	Findings func(text string) []string
}

func New() *Extractor {
	return &Extractor{Findings: StaticFindings}
}

// StaticFindings returns the canonical findings regardless of input.
func StaticFindings(string) []string {
	out := make([]string, len(CanonicalFindings))
	copy(out, CanonicalFindings)
	return out
}

// Extract parses the four category mappings out of the text. A label
// with no match defaults to zero, so every enumerated key is always
// present. Out-of-range percentages are passed through unvalidated;
// range policy belongs to the caller.
func (e *Extractor) Extract(text string) apimodels.DemographicBreakdown {
	b := apimodels.NewDemographicBreakdown()
	fill(b.AgeGroups, ageLabels, text)
	fill(b.Gender, genderLabels, text)
	fill(b.Pregnancy, pregnancyLabels, text)
	fill(b.Geography, geographyLabels, text)

	findings := e.Findings
	if findings == nil {
		findings = StaticFindings
	}
	b.CriticalFindings = findings(text)
	return b
}

func fill(m map[string]int, labels []label, text string) {
	for _, l := range labels {
		if match := l.re.FindStringSubmatch(text); match != nil {
			// the capture group is digits only, so this cannot fail
			n, _ := strconv.Atoi(match[1])
			m[l.key] = n
		}
	}
}
