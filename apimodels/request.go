package apimodels

type AnalysisRequest struct {
	// Disease is the disease query to analyze the literature for
	Disease string `json:"disease"`

	// Optional parameters to control analysis behavior
	Options AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	// Model specifies which LLM model to use (e.g. "gpt-4o")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// MaxPapers caps how many retrieved papers feed the analysis
	MaxPapers int `json:"maxPapers,omitempty"`
}
