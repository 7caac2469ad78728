package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/extract"
	"github.com/evidenceml/blindspot/internal/llm"
)

// SystemPrompt instructs the model to report percentages using the
// exact label phrasing the extractor's patterns recognize.
var SystemPrompt = `You are a medical research analyst reviewing study demographics.
Given a set of paper titles and abstracts for a disease, estimate what share of
the studies covers each population segment. Report every segment on its own line
as "<label>: <integer>%", using exactly these labels:
Pediatric (0-18), Young Adults (18-40), Middle-aged (40-65), Elderly (65-75),
Very Elderly (>75), Age not specified, Male participants, Female participants,
Gender not specified, Pregnant women, Non-pregnant women, Pregnancy status not
specified, North America, Europe, Asia, Africa, Other regions, Region not
specified.
After the percentages, list any critical representation gaps you observe.`

// Invoker is the model-call capability the analyzer depends on. It is
// injected at the composition root so tests can substitute a
// controllable stand-in.
type Invoker interface {
	Invoke(ctx context.Context, system, user string, opts ...llm.Option) *llm.Response
	Backend() string
}

// Model analyzes papers by composing one combined prompt, invoking the
// model client and extracting its raw answer.
type Model struct {
	client         Invoker
	extractor      *extract.Extractor
	maxPromptChars int
	opts           []llm.Option
}

func NewModel(client Invoker, extractor *extract.Extractor, maxPromptChars int, opts ...llm.Option) *Model {
	return &Model{
		client:         client,
		extractor:      extractor,
		maxPromptChars: maxPromptChars,
		opts:           opts,
	}
}

func (m *Model) Analyze(ctx context.Context, papers []apimodels.PaperSummary, disease string, opts ...llm.Option) (*Result, error) {
	slog.Info("running model population analysis", "disease", disease, "papers", len(papers))

	// Nothing to analyze; do not spend a model call on it.
	if len(papers) == 0 {
		return &Result{
			Breakdown: apimodels.NewDemographicBreakdown(),
			Mode:      ModeModel,
			Backend:   m.client.Backend(),
		}, nil
	}

	prompt := buildPrompt(papers, disease, m.maxPromptChars)
	callOpts := append(append([]llm.Option{}, m.opts...), opts...)
	resp := m.client.Invoke(ctx, SystemPrompt, prompt, callOpts...)

	return &Result{
		Breakdown:  m.extractor.Extract(resp.Content),
		Mode:       ModeModel,
		Backend:    m.client.Backend(),
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

// buildPrompt summarizes the paper set into a single prompt, bounded
// by maxChars to keep request size predictable.
func buildPrompt(papers []apimodels.PaperSummary, disease string, maxChars int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Disease under review: %s\n\nPapers (%d):\n", disease, len(papers))

	for i, p := range papers {
		entry := fmt.Sprintf("\n%d. %s (%d)\n%s\n", i+1, p.Title, p.Year, p.Abstract)
		if sb.Len()+len(entry) > maxChars {
			sb.WriteString("\n[remaining papers omitted]\n")
			break
		}
		sb.WriteString(entry)
	}

	return truncate(sb.String(), maxChars)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
