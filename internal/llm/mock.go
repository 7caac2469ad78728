package llm

import (
	"context"
	"time"
)

// MockModel is the backend identifier reported by the mock provider.
const MockModel = "mock-gpt"

// MockAnalysis is the canned analysis text returned by the mock
// backend. It is deliberately input-independent: its purpose is to
// keep the pipeline runnable without credentials or network access,
// with realistic content for the extractor to work on.
const MockAnalysis = `DEMOGRAPHIC ANALYSIS OF RETRIEVED LITERATURE

Age distribution across the analyzed studies:
- Pediatric (0-18): 0% of studies included this group
- Young Adults (18-40): 15% of studies
- Middle-aged (40-65): 60% of studies
- Elderly (65-75): 45% of studies
- Very Elderly (>75): 8% of studies

Gender representation:
- Male participants: 42%
- Female participants: 48%
- Gender not specified: 10%

Pregnancy status:
- Pregnant women: 0% (systematically excluded from trials)
- Non-pregnant women: 0% (rarely reported separately)
- Pregnancy status not specified: 100%

Geographic distribution of study populations:
- North America: 52%
- Europe: 28%
- Asia: 12%
- Africa: 0%
- Other regions: 8%

CRITICAL FINDINGS: pregnant women and pediatric patients are
systematically absent from the analyzed cohorts, and African study
populations are almost entirely missing.`

// Mock is the deterministic stand-in backend used when no credential
// is configured or a live call fails.
type Mock struct {
	// Delay simulates network latency so timing-sensitive callers
	// behave consistently with the live path. Tests set it near zero.
	Delay time.Duration
}

func NewMock(delay time.Duration) *Mock {
	return &Mock{Delay: delay}
}

func (m *Mock) Analyze(ctx context.Context, system, user string, opts ...Option) (*Response, error) {
	select {
	case <-time.After(m.Delay):
	case <-ctx.Done():
	}

	return &Response{
		Content: MockAnalysis,
		Model:   MockModel,
		Usage: Usage{
			PromptTokens:     512,
			CompletionTokens: 256,
			TotalTokens:      768,
		},
	}, nil
}
