package apimodels

type AnalysisResponse struct {
	// The structured demographic breakdown of the analyzed literature
	Breakdown DemographicBreakdown `json:"breakdown"`

	// Under-represented population segments detected downstream
	BlindSpots []BlindSpot `json:"blindSpots,omitempty"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type BlindSpot struct {
	// Category the segment belongs to (age, gender, pregnancy, geography)
	Category string `json:"category"`

	// Segment is the enumerated key within the category
	Segment string `json:"segment"`

	// Percentage observed in the analyzed literature
	Percentage int `json:"percentage"`

	// Threshold the segment fell below
	Threshold int `json:"threshold"`

	// Severity is "critical" or "warning"
	Severity string `json:"severity"`
}

type AnalysisMetadata struct {
	// Unique identifier for this analysis run
	ID string `json:"id"`

	// Time taken for analysis
	Duration string `json:"duration"`

	// Backend that produced the analysis text ("live" or "mock")
	Backend string `json:"backend"`

	// Model used for analysis
	Model string `json:"model"`

	// Tokens used in analysis, zero when unavailable
	TokensUsed int64 `json:"tokensUsed"`

	// Mode is "model" or "heuristic"
	Mode string `json:"mode"`

	// Papers analyzed in this run
	Papers int `json:"papers"`
}
