// Package analyzer turns a set of paper summaries into a structured
// demographic breakdown, either by rule-based keyword matching or by
// prompting a model backend and extracting its answer.
package analyzer

import (
	"context"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/llm"
)

const (
	ModeHeuristic = "heuristic"
	ModeModel     = "model"
)

// Result is the structurally identical output of both analysis modes;
// consumers never branch on which variant produced it.
type Result struct {
	Breakdown apimodels.DemographicBreakdown

	// Mode is ModeHeuristic or ModeModel.
	Mode string

	// Backend, Model and TokensUsed describe the model invocation when
	// Mode is ModeModel; the heuristic path leaves them zero-valued.
	Backend    string
	Model      string
	TokensUsed int64
}

// Analyzer is the population-analysis capability. Both variants are
// resilient to an empty paper sequence and always return a breakdown
// with every enumerated key present. Per-call model options only
// affect the model variant; the heuristic variant ignores them.
type Analyzer interface {
	Analyze(ctx context.Context, papers []apimodels.PaperSummary, disease string, opts ...llm.Option) (*Result, error)
}
