package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	calls   int
	prompts []string
	text    string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func TestGenerateNoReports(t *testing.T) {
	svc := NewActionItemService(newTestDB(t), &fakeGenerator{text: "• item"})
	_, err := svc.Generate(context.Background(), "2024-01-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	llm := &fakeGenerator{text: "• Review the PR\n• Finish lead generation"}
	svc := NewActionItemService(db, llm)
	ctx := context.Background()

	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "")
	submitReport(t, reports, "2024-01-01", "Bob", "lead calls", "lead generation", "none today")

	first, err := svc.Generate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, llm.text, first)

	second, err := svc.Generate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, llm.calls, "cached date must not invoke the model again")
}

func TestGeneratePromptContainsAllReports(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	llm := &fakeGenerator{text: "• item"}
	svc := NewActionItemService(db, llm)
	ctx := context.Background()

	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "ci flaky")
	submitReport(t, reports, "2024-01-01", "Bob", "deployed", "monitor dashboards", "")

	_, err := svc.Generate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)

	prompt := llm.prompts[0]
	for _, want := range []string{"Alice", "Bob", "review PR", "monitor dashboards", "ci flaky", "bullet point"} {
		assert.Contains(t, prompt, want)
	}
	// listing order is preserved in the prompt
	assert.Less(t, strings.Index(prompt, "Alice"), strings.Index(prompt, "Bob"))
}

func TestGenerateFailureLeavesNoCache(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	llm := &fakeGenerator{err: errors.New("model unavailable")}
	svc := NewActionItemService(db, llm)
	ctx := context.Background()

	submitReport(t, reports, "2024-01-01", "Alice", "wrote tests", "review PR", "")

	_, err := svc.Generate(ctx, "2024-01-01")
	assert.ErrorIs(t, err, ErrGeneration)

	cached, err := svc.Cached(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, cached, "failed generation must not be cached")

	// a retry after recovery succeeds and caches
	llm.err = nil
	llm.text = "• Review the PR"
	text, err := svc.Generate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "• Review the PR", text)

	cached, err = svc.Cached(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "• Review the PR", cached)
}

func TestCachedEmptyWhenNothingGenerated(t *testing.T) {
	svc := NewActionItemService(newTestDB(t), &fakeGenerator{})
	cached, err := svc.Cached(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "", cached)
}
