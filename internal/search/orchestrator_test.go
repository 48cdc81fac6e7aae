package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu       sync.Mutex
	queries  []string
	clears   int
	dispatch chan string
}

func newRecorder() *recorder {
	return &recorder{dispatch: make(chan string, 16)}
}

func (r *recorder) onDispatch(query string) {
	r.mu.Lock()
	r.queries = append(r.queries, query)
	r.mu.Unlock()
	r.dispatch <- query
}

func (r *recorder) onClear() {
	r.mu.Lock()
	r.clears++
	r.mu.Unlock()
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func (r *recorder) clearCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

func TestOrchestratorDispatchesFinalValueOnce(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(30*time.Millisecond), WithClear(rec.onClear))
	defer o.Close()

	// Simulate typing "anxiety" one keystroke at a time.
	for _, q := range []string{"an", "anx", "anxi", "anxie", "anxiet", "anxiety"} {
		o.Update(q)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case got := <-rec.dispatch:
		assert.Equal(t, "anxiety", got)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
	}

	// The quiet period has passed; no further dispatch should arrive.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"anxiety"}, rec.recorded())
}

func TestOrchestratorShortQueryClears(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(20*time.Millisecond), WithClear(rec.onClear))
	defer o.Close()

	o.Update("anxiety")
	// Deleting back down to one character cancels the pending dispatch.
	o.Update("a")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.recorded())
	assert.Equal(t, 1, rec.clearCount())
}

func TestOrchestratorTrimsWhitespace(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(20*time.Millisecond))
	defer o.Close()

	o.Update("  sleep  ")

	select {
	case got := <-rec.dispatch:
		assert.Equal(t, "sleep", got)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
	}
}

func TestOrchestratorWhitespaceOnlyNeverDispatches(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(20*time.Millisecond), WithClear(rec.onClear))
	defer o.Close()

	o.Update("   ")
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.recorded())
	assert.Equal(t, 1, rec.clearCount())
}

func TestOrchestratorCloseCancelsPending(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(30*time.Millisecond))

	o.Update("breathing")
	o.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.recorded())

	// Updates after close are ignored.
	o.Update("breathing")
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.recorded())
}

func TestOrchestratorRapidRetypeDispatchesLatest(t *testing.T) {
	rec := newRecorder()
	o := NewOrchestrator(rec.onDispatch, WithDebounce(25*time.Millisecond), WithClear(rec.onClear))
	defer o.Close()

	o.Update("panic")
	o.Update("p")
	o.Update("grief")

	select {
	case got := <-rec.dispatch:
		assert.Equal(t, "grief", got)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch")
	}
	assert.Equal(t, []string{"grief"}, rec.recorded())
}
