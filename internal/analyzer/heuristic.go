package analyzer

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/extract"
	"github.com/evidenceml/blindspot/internal/llm"
)

type keywordRule struct {
	segment string
	re      *regexp.Regexp
}

func rule(segment, expr string) keywordRule {
	return keywordRule{segment: segment, re: regexp.MustCompile(`\b(?:` + expr + `)\b`)}
}

// Keyword rules applied to lowercased title+abstract text. A paper
// counts toward a segment when any keyword matches; percentages are
// the integer share of papers mentioning the segment. Shares across
// segments may overlap or leave gaps, matching the tolerance of the
// model path.
var (
	ageRules = []keywordRule{
		rule("0-18", `pediatric|paediatric|children|child|adolescent|adolescents|infant|infants|neonatal`),
		rule("18-40", `young adult|young adults`),
		rule("40-65", `middle-aged|middle aged|midlife`),
		rule("65-75", `elderly|older adult|older adults|geriatric`),
		rule(">75", `very elderly|oldest old|octogenarian|octogenarians|nonagenarian|nonagenarians`),
	}
	genderRules = []keywordRule{
		rule("male", `male|males|men`),
		rule("female", `female|females|women`),
	}
	pregnancyRules = []keywordRule{
		rule("pregnant", `pregnant|pregnancy|gestation|gestational`),
		rule("not_pregnant", `non-pregnant|nonpregnant`),
	}
	geographyRules = []keywordRule{
		rule("North America", `north america|united states|canada|usa`),
		rule("Europe", `europe|european|united kingdom|germany|france|italy|spain`),
		rule("Asia", `asia|asian|china|japan|india|korea`),
		rule("Africa", `africa|african|nigeria|kenya|south africa`),
		rule("Other", `south america|latin america|australia|oceania|middle east|brazil`),
	}
)

// Heuristic analyzes abstracts with deterministic keyword rules and no
// model call. Papers are processed independently, so the result does
// not depend on their order, and a paper matching nothing simply
// contributes zero everywhere.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Analyze(ctx context.Context, papers []apimodels.PaperSummary, disease string, opts ...llm.Option) (*Result, error) {
	slog.Info("running heuristic population analysis", "disease", disease, "papers", len(papers))

	breakdown := apimodels.NewDemographicBreakdown()
	if len(papers) == 0 {
		return &Result{Breakdown: breakdown, Mode: ModeHeuristic}, nil
	}

	for _, p := range papers {
		text := strings.ToLower(p.Title + " " + p.Abstract)
		count(breakdown.AgeGroups, ageRules, text)
		count(breakdown.Gender, genderRules, text)
		count(breakdown.Pregnancy, pregnancyRules, text)
		count(breakdown.Geography, geographyRules, text)
	}

	toShares(breakdown.AgeGroups, len(papers))
	toShares(breakdown.Gender, len(papers))
	toShares(breakdown.Pregnancy, len(papers))
	toShares(breakdown.Geography, len(papers))

	breakdown.CriticalFindings = extract.StaticFindings("")
	return &Result{Breakdown: breakdown, Mode: ModeHeuristic}, nil
}

func count(m map[string]int, rules []keywordRule, text string) {
	for _, r := range rules {
		if r.re.MatchString(text) {
			m[r.segment]++
		}
	}
}

func toShares(m map[string]int, papers int) {
	for k, v := range m {
		m[k] = v * 100 / papers
	}
}
