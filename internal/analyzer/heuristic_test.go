package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidenceml/blindspot/apimodels"
)

func TestHeuristicEmptyPaperSequence(t *testing.T) {
	result, err := NewHeuristic().Analyze(context.Background(), nil, "diabetes")
	require.NoError(t, err)

	assert.Equal(t, ModeHeuristic, result.Mode)
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

func TestHeuristicKeywordMatching(t *testing.T) {
	papers := []apimodels.PaperSummary{
		{
			Title:    "Treatment outcomes in elderly patients",
			Abstract: "A cohort of elderly men recruited across the United States.",
		},
		{
			Title:    "Pediatric manifestations",
			Abstract: "Children enrolled at two hospitals in Nigeria.",
		},
	}

	result, err := NewHeuristic().Analyze(context.Background(), papers, "malaria")
	require.NoError(t, err)

	b := result.Breakdown
	assert.Equal(t, 50, b.AgeGroups["65-75"])
	assert.Equal(t, 50, b.AgeGroups["0-18"])
	assert.Equal(t, 0, b.AgeGroups["18-40"])
	assert.Equal(t, 50, b.Gender["male"])
	assert.Equal(t, 50, b.Geography["North America"])
	assert.Equal(t, 50, b.Geography["Africa"])
	assert.Equal(t, 0, b.Geography["Asia"])
	assert.NotEmpty(t, b.CriticalFindings)
}

func TestHeuristicIsOrderIndependent(t *testing.T) {
	papers := []apimodels.PaperSummary{
		{Title: "A", Abstract: "pregnant women in Europe"},
		{Title: "B", Abstract: "young adults in Asia"},
		{Title: "C", Abstract: "no demographic signal"},
	}
	reversed := []apimodels.PaperSummary{papers[2], papers[1], papers[0]}

	h := NewHeuristic()
	forward, err := h.Analyze(context.Background(), papers, "asthma")
	require.NoError(t, err)
	backward, err := h.Analyze(context.Background(), reversed, "asthma")
	require.NoError(t, err)

	assert.Equal(t, forward.Breakdown, backward.Breakdown)
}

func TestHeuristicUnmatchedPaperContributesZero(t *testing.T) {
	papers := []apimodels.PaperSummary{
		{Title: "Quantum flux dynamics", Abstract: "Nothing demographic here."},
	}

	result, err := NewHeuristic().Analyze(context.Background(), papers, "lupus")
	require.NoError(t, err)

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
}

func TestHeuristicWordBoundaries(t *testing.T) {
	// "female" must not count toward male, "women" must not count as "men"
	papers := []apimodels.PaperSummary{
		{Title: "X", Abstract: "A study of female participants, all women."},
	}

	result, err := NewHeuristic().Analyze(context.Background(), papers, "anemia")
	require.NoError(t, err)

	assert.Equal(t, 100, result.Breakdown.Gender["female"])
	assert.Equal(t, 0, result.Breakdown.Gender["male"])
}
