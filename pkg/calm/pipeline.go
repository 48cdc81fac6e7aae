// Package calm rewrites article content blocks into a gentler tone through a
// text-generation provider. Rewrites for distinct blocks run concurrently and
// are joined back by index so the returned sequence always preserves reading
// order. A block whose rewrite fails, times out, or comes back empty keeps its
// original text; one bad block never discards its siblings or aborts the batch.
package calm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

const rewritePrompt = `You are an empathetic content assistant. The user is in a vulnerable state. Rewrite the following article content in a calm, soothing, and positive tone. Keep it factual but soften harsh language. Keep length and structure similar, but aim for emotional comfort. Return output in plain text, 3-4 paragraphs maximum.

ARTICLE CONTENT:
%s`

// Block is one titled unit of article body text.
type Block struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	Hotline  string `json:"hotline,omitempty"`
}

// Pipeline computes and caches calm rewrites per article.
type Pipeline struct {
	provider     llm.Provider
	logger       logger.ILogger
	blockTimeout time.Duration

	results *cache.Cache

	// one in-flight computation per article key
	mu       sync.Mutex
	inFlight map[string]chan struct{}
}

// Option mutates pipeline construction defaults.
type Option func(*Pipeline)

// WithBlockTimeout overrides the per-block rewrite deadline.
func WithBlockTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.blockTimeout = d }
}

// WithCacheTTL overrides how long a rewritten article stays cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(p *Pipeline) { p.results = cache.New(ttl, 10*time.Minute) }
}

func NewPipeline(provider llm.Provider, log logger.ILogger, opts ...Option) *Pipeline {
	p := &Pipeline{
		provider:     provider,
		logger:       log,
		blockTimeout: 10 * time.Second,
		results:      cache.New(30*time.Minute, 10*time.Minute),
		inFlight:     make(map[string]chan struct{}),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Rewrite returns the calm rendition of blocks for the article identified by
// key. The first call per key computes and caches; concurrent and subsequent
// calls reuse the cached result without re-issuing provider calls.
func (p *Pipeline) Rewrite(ctx context.Context, key string, blocks []Block) []Block {
	if len(blocks) == 0 {
		return blocks
	}

	for {
		if cached, found := p.results.Get(key); found {
			return cached.([]Block)
		}

		p.mu.Lock()
		if done, running := p.inFlight[key]; running {
			p.mu.Unlock()
			select {
			case <-done:
				continue // cache is populated now
			case <-ctx.Done():
				return blocks
			}
		}
		done := make(chan struct{})
		p.inFlight[key] = done
		p.mu.Unlock()

		rewritten := p.rewriteAll(ctx, key, blocks)
		if ctx.Err() == nil {
			p.results.Set(key, rewritten, cache.DefaultExpiration)
		} else {
			// The caller went away mid-batch, so every block fell back to
			// its original text. Caching that would pin unrewritten content
			// for the TTL; leave the cache empty and let the next calm view
			// retry.
			p.logger.Warn("CalmPipeline", "Batch aborted by caller, not caching", map[string]interface{}{
				"article": key,
				"error":   ctx.Err().Error(),
			})
		}

		p.mu.Lock()
		delete(p.inFlight, key)
		p.mu.Unlock()
		close(done)

		return rewritten
	}
}

// Invalidate drops the cached rewrite for an article, e.g. after it is edited.
func (p *Pipeline) Invalidate(key string) {
	p.results.Delete(key)
}

// rewriteAll fans out one provider call per block and joins results by index.
func (p *Pipeline) rewriteAll(ctx context.Context, key string, blocks []Block) []Block {
	out := make([]Block, len(blocks))

	var wg sync.WaitGroup
	for i, block := range blocks {
		wg.Add(1)
		go func(i int, block Block) {
			defer wg.Done()
			out[i] = p.rewriteOne(ctx, key, i, block)
		}(i, block)
	}
	wg.Wait()

	return out
}

func (p *Pipeline) rewriteOne(ctx context.Context, key string, idx int, block Block) Block {
	blockCtx, cancel := context.WithTimeout(ctx, p.blockTimeout)
	defer cancel()

	parts := make([]string, 0, 2)
	if block.Title != "" {
		parts = append(parts, block.Title)
	}
	if block.Content != "" {
		parts = append(parts, block.Content)
	}
	source := strings.Join(parts, "\n\n")
	if source == "" {
		return block
	}

	text, err := p.provider.Generate(blockCtx, fmt.Sprintf(rewritePrompt, source))
	if err != nil || strings.TrimSpace(text) == "" {
		// Best-effort: keep the original block, never surface this to the user
		p.logger.Warn("CalmPipeline", "Block rewrite failed, keeping original", map[string]interface{}{
			"article": key,
			"block":   idx,
			"error":   fmt.Sprint(err),
		})
		return block
	}

	rewritten := block
	rewritten.Content = strings.TrimSpace(text)
	return rewritten
}
