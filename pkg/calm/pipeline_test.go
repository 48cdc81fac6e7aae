package calm

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider answers Generate based on which source block the prompt wraps.
type stubProvider struct {
	calls    atomic.Int64
	delays   map[string]time.Duration // block content -> artificial latency
	failures map[string]bool          // block content -> forced error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, _ ...llm.Option) (string, error) {
	s.calls.Add(1)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	for marker, d := range s.delays {
		if strings.Contains(prompt, marker) {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	for marker, fail := range s.failures {
		if fail && strings.Contains(prompt, marker) {
			return "", errors.New("generation failed")
		}
	}

	// Echo back a recognizable rewrite of whichever block arrived
	for _, marker := range []string{"alpha", "bravo", "charlie"} {
		if strings.Contains(prompt, marker) {
			return "calm " + marker, nil
		}
	}
	return "calm text", nil
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return s.Generate(ctx, history[len(history)-1].Content, opts...)
}

func testBlocks() []Block {
	return []Block{
		{Title: "A", Content: "alpha"},
		{Title: "B", Content: "bravo"},
		{Title: "C", Content: "charlie"},
	}
}

func TestRewritePreservesOrderUnderDelay(t *testing.T) {
	provider := &stubProvider{
		delays: map[string]time.Duration{"bravo": 150 * time.Millisecond},
	}
	p := NewPipeline(provider, logger.NewNoopLogger())

	out := p.Rewrite(context.Background(), "article-1", testBlocks())

	require.Len(t, out, 3)
	assert.Equal(t, "calm alpha", out[0].Content)
	assert.Equal(t, "calm bravo", out[1].Content)
	assert.Equal(t, "calm charlie", out[2].Content)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
}

func TestRewritePartialFailureKeepsOriginalBlock(t *testing.T) {
	provider := &stubProvider{
		failures: map[string]bool{"bravo": true},
	}
	p := NewPipeline(provider, logger.NewNoopLogger())

	out := p.Rewrite(context.Background(), "article-2", testBlocks())

	require.Len(t, out, 3)
	assert.Equal(t, "calm alpha", out[0].Content)
	assert.Equal(t, "bravo", out[1].Content, "failed block keeps its original text")
	assert.Equal(t, "calm charlie", out[2].Content)
}

func TestRewriteTimeoutFallsBackPerBlock(t *testing.T) {
	provider := &stubProvider{
		delays: map[string]time.Duration{"charlie": time.Second},
	}
	p := NewPipeline(provider, logger.NewNoopLogger(), WithBlockTimeout(50*time.Millisecond))

	out := p.Rewrite(context.Background(), "article-3", testBlocks())

	require.Len(t, out, 3)
	assert.Equal(t, "calm alpha", out[0].Content)
	assert.Equal(t, "charlie", out[2].Content, "timed-out block keeps its original text")
}

func TestRewriteCachedResultSkipsProvider(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline(provider, logger.NewNoopLogger())

	first := p.Rewrite(context.Background(), "article-4", testBlocks())
	callsAfterFirst := provider.calls.Load()
	require.Equal(t, int64(3), callsAfterFirst)

	second := p.Rewrite(context.Background(), "article-4", testBlocks())
	assert.Equal(t, callsAfterFirst, provider.calls.Load(), "second call must not dispatch")
	assert.Equal(t, first, second)
}

func TestRewriteEmptyInput(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline(provider, logger.NewNoopLogger())

	out := p.Rewrite(context.Background(), "article-5", nil)
	assert.Empty(t, out)
	assert.Equal(t, int64(0), provider.calls.Load())
}

func TestRewriteCancelledCallerIsNotCached(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline(provider, logger.NewNoopLogger())

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	out := p.Rewrite(cancelled, "article-7", testBlocks())
	require.Len(t, out, 3)
	assert.Equal(t, "alpha", out[0].Content, "aborted batch keeps original text")

	// A later healthy request must recompute instead of inheriting the
	// aborted batch for the full cache TTL.
	retry := p.Rewrite(context.Background(), "article-7", testBlocks())
	assert.Equal(t, "calm alpha", retry[0].Content)
	assert.Equal(t, "calm bravo", retry[1].Content)
	assert.Equal(t, int64(6), provider.calls.Load(), "retry must dispatch again")
}

func TestInvalidateForcesRecompute(t *testing.T) {
	provider := &stubProvider{}
	p := NewPipeline(provider, logger.NewNoopLogger())

	p.Rewrite(context.Background(), "article-6", testBlocks())
	p.Invalidate("article-6")
	p.Rewrite(context.Background(), "article-6", testBlocks())

	assert.Equal(t, int64(6), provider.calls.Load())
}
