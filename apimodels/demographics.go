package apimodels

// Enumerated segment keys per demographic category. Every
// DemographicBreakdown mapping carries exactly these keys; consumers
// may read any of them unconditionally.
var (
	AgeBrackets     = []string{"0-18", "18-40", "40-65", "65-75", ">75", "not_specified"}
	Genders         = []string{"male", "female", "not_specified"}
	PregnancyStates = []string{"pregnant", "not_pregnant", "not_specified"}
	GeographicAreas = []string{"North America", "Europe", "Asia", "Africa", "Other", "not_specified"}
)

// DemographicBreakdown is the structured output of one analysis run.
// Percentages are non-negative integers and are not required to sum to
// 100 within a category: the source narrative may omit or double-count
// populations, and that tolerance is deliberate.
type DemographicBreakdown struct {
	AgeGroups        map[string]int `json:"ageGroups"`
	Gender           map[string]int `json:"gender"`
	Pregnancy        map[string]int `json:"pregnancy"`
	Geography        map[string]int `json:"geography"`
	CriticalFindings []string       `json:"criticalFindings"`
}

// NewDemographicBreakdown returns a breakdown with every enumerated
// key present and zeroed, and no findings.
func NewDemographicBreakdown() DemographicBreakdown {
	return DemographicBreakdown{
		AgeGroups: zeroed(AgeBrackets),
		Gender:    zeroed(Genders),
		Pregnancy: zeroed(PregnancyStates),
		Geography: zeroed(GeographicAreas),
	}
}

func zeroed(keys []string) map[string]int {
	m := make(map[string]int, len(keys))
	for _, k := range keys {
		m[k] = 0
	}
	return m
}
