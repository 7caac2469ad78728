// Package blindspot flags population segments whose representation in
// the analyzed literature falls below policy thresholds.
package blindspot

import (
	"github.com/evidenceml/blindspot/apimodels"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Detector holds the minimum-representation threshold per category.
type Detector struct {
	Thresholds map[string]int
}

// NewDetector returns a detector with the default policy thresholds.
func NewDetector() *Detector {
	return &Detector{
		Thresholds: map[string]int{
			"age":       10,
			"gender":    20,
			"pregnancy": 5,
			"geography": 10,
		},
	}
}

// Detect reports every enumerated segment below its category
// threshold. The "not_specified" segments describe reporting quality,
// not populations, and are never flagged. An all-zero breakdown is a
// valid input and simply flags every population segment.
func (d *Detector) Detect(b apimodels.DemographicBreakdown) []apimodels.BlindSpot {
	var spots []apimodels.BlindSpot
	spots = append(spots, d.scan("age", apimodels.AgeBrackets, b.AgeGroups)...)
	spots = append(spots, d.scan("gender", apimodels.Genders, b.Gender)...)
	spots = append(spots, d.scan("pregnancy", apimodels.PregnancyStates, b.Pregnancy)...)
	spots = append(spots, d.scan("geography", apimodels.GeographicAreas, b.Geography)...)
	return spots
}

func (d *Detector) scan(category string, segments []string, values map[string]int) []apimodels.BlindSpot {
	threshold := d.Thresholds[category]

	var spots []apimodels.BlindSpot
	for _, seg := range segments {
		if seg == "not_specified" {
			continue
		}
		pct := values[seg]
		if pct >= threshold {
			continue
		}

		severity := SeverityWarning
		if pct < threshold/2 {
			severity = SeverityCritical
		}
		spots = append(spots, apimodels.BlindSpot{
			Category:   category,
			Segment:    seg,
			Percentage: pct,
			Threshold:  threshold,
			Severity:   severity,
		})
	}
	return spots
}
