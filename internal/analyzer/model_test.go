package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidenceml/blindspot/apimodels"
	"github.com/evidenceml/blindspot/internal/extract"
	"github.com/evidenceml/blindspot/internal/llm"
)

type stubInvoker struct {
	resp       *llm.Response
	backend    string
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubInvoker) Invoke(ctx context.Context, system, user string, opts ...llm.Option) *llm.Response {
	s.calls++
	s.lastSystem = system
	s.lastUser = user
	return s.resp
}

func (s *stubInvoker) Backend() string {
	return s.backend
}

func mockResponse() *llm.Response {
	return &llm.Response{
		Content: llm.MockAnalysis,
		Model:   llm.MockModel,
		Usage:   llm.Usage{TotalTokens: 768},
	}
}

func TestModelAnalyzeExtractsStructuredBreakdown(t *testing.T) {
	stub := &stubInvoker{resp: mockResponse(), backend: llm.BackendMock}
	m := NewModel(stub, extract.New(), 12000)

	papers := []apimodels.PaperSummary{
		{ID: "p1", Title: "Hypertension outcomes", Abstract: "An observational study.", Year: 2021},
	}

	result, err := m.Analyze(context.Background(), papers, "hypertension")
	require.NoError(t, err)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, ModeModel, result.Mode)
	assert.Equal(t, llm.BackendMock, result.Backend)
	assert.Equal(t, llm.MockModel, result.Model)
	assert.Equal(t, int64(768), result.TokensUsed)

	assert.Equal(t, 60, result.Breakdown.AgeGroups["40-65"])
	assert.Equal(t, 48, result.Breakdown.Gender["female"])
	assert.Equal(t, 100, result.Breakdown.Pregnancy["not_specified"])
	assert.Equal(t, 52, result.Breakdown.Geography["North America"])
	assert.Len(t, result.Breakdown.CriticalFindings, len(extract.CanonicalFindings))
}

func TestModelAnalyzePromptContainsPapers(t *testing.T) {
	stub := &stubInvoker{resp: mockResponse(), backend: llm.BackendMock}
	m := NewModel(stub, extract.New(), 12000)

	papers := []apimodels.PaperSummary{
		{Title: "Cardiac arrest registry analysis", Abstract: "Registry data from 2010-2020.", Year: 2022},
	}

	_, err := m.Analyze(context.Background(), papers, "cardiac arrest")
	require.NoError(t, err)

	assert.Contains(t, stub.lastUser, "cardiac arrest")
	assert.Contains(t, stub.lastUser, "Cardiac arrest registry analysis")
	assert.Contains(t, stub.lastSystem, "Pediatric (0-18)")
}

func TestModelAnalyzeEmptyPaperSequenceSkipsModelCall(t *testing.T) {
	stub := &stubInvoker{resp: mockResponse(), backend: llm.BackendMock}
	m := NewModel(stub, extract.New(), 12000)

	result, err := m.Analyze(context.Background(), nil, "sepsis")
	require.NoError(t, err)

	assert.Zero(t, stub.calls)
	assert.Equal(t, ModeModel, result.Mode)
	for _, m := range []map[string]int{
		result.Breakdown.AgeGroups,
		result.Breakdown.Gender,
		result.Breakdown.Pregnancy,
		result.Breakdown.Geography,
	} {
		for k, v := range m {
			assert.Zerof(t, v, "expected zero for %q", k)
		}
	}
	assert.Empty(t, result.Breakdown.CriticalFindings)
}

func TestBuildPromptBoundsCombinedLength(t *testing.T) {
	long := strings.Repeat("demographic detail ", 200)
	papers := make([]apimodels.PaperSummary, 50)
	for i := range papers {
		papers[i] = apimodels.PaperSummary{Title: "Paper", Abstract: long, Year: 2020}
	}

	prompt := buildPrompt(papers, "stroke", 500)
	assert.LessOrEqual(t, len(prompt), 500)
	assert.Contains(t, prompt, "stroke")
}

func TestBothModesShareTheSameResultShape(t *testing.T) {
	papers := []apimodels.PaperSummary{
		{Title: "Elderly cohort in Europe", Abstract: "elderly women in Germany"},
	}

	stub := &stubInvoker{resp: mockResponse(), backend: llm.BackendMock}
	modelResult, err := NewModel(stub, extract.New(), 12000).Analyze(context.Background(), papers, "copd")
	require.NoError(t, err)

	heuristicResult, err := NewHeuristic().Analyze(context.Background(), papers, "copd")
	require.NoError(t, err)

	// identical key sets regardless of which variant produced them
	for k := range modelResult.Breakdown.AgeGroups {
		_, ok := heuristicResult.Breakdown.AgeGroups[k]
		assert.Truef(t, ok, "heuristic breakdown missing key %q", k)
	}
	for k := range modelResult.Breakdown.Geography {
		_, ok := heuristicResult.Breakdown.Geography[k]
		assert.Truef(t, ok, "heuristic breakdown missing key %q", k)
	}
}
