package service

import (
	"context"
	"errors"
	"testing"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/hotline"
	"mindwell-be/pkg/searchindex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	records []searchindex.Record
	err     error
	queries []string
	filters []string
	saved   []searchindex.Record
	similar []searchindex.Record
}

func (f *fakeIndex) Query(_ context.Context, text, filters string) ([]searchindex.Record, error) {
	f.queries = append(f.queries, text)
	f.filters = append(f.filters, filters)
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeIndex) SimilarTo(_ context.Context, _, _ string) ([]searchindex.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.similar, nil
}

func (f *fakeIndex) SaveObject(_ context.Context, record searchindex.Record) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, record)
	return nil
}

type fakeSessionService struct {
	calmSet     map[string]bool
	remembered  map[string]string
	calmByID    map[string]bool
	setCalmErrs error
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{
		calmSet:    make(map[string]bool),
		remembered: make(map[string]string),
		calmByID:   make(map[string]bool),
	}
}

func (f *fakeSessionService) Start(context.Context) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionId: "test-session"}, nil
}

func (f *fakeSessionService) Show(_ context.Context, id string) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionId: id, Calm: f.calmByID[id]}, nil
}

func (f *fakeSessionService) SetCalm(_ context.Context, id string, calm bool) (*dto.SessionResponse, error) {
	if f.setCalmErrs != nil {
		return nil, f.setCalmErrs
	}
	f.calmSet[id] = calm
	f.calmByID[id] = calm
	return &dto.SessionResponse{SessionId: id, Calm: calm}, nil
}

func (f *fakeSessionService) IsCalm(_ context.Context, id string) bool {
	return f.calmByID[id]
}

func (f *fakeSessionService) RememberQuery(_ context.Context, id string, query string) {
	f.remembered[id] = query
}

func newSearchFixture(index *fakeIndex) (ISearchService, *fakeSessionService) {
	sessions := newFakeSessionService()
	hotlines := NewHotlineService(hotline.NewDirectory())
	return NewSearchService(index, sessions, hotlines, logger.NewNoopLogger()), sessions
}

func TestSearchBelowMinimumLengthReturnsEmpty(t *testing.T) {
	index := &fakeIndex{}
	svc, _ := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "s1", "a")
	require.NoError(t, err)
	assert.False(t, res.Crisis)
	assert.Empty(t, res.Results)
	assert.Empty(t, index.queries, "index must not be contacted below the length threshold")
}

func TestSearchCrisisShortCircuits(t *testing.T) {
	index := &fakeIndex{records: []searchindex.Record{{ObjectID: "1", Title: "should not appear"}}}
	svc, sessions := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "s1", "I want to die")
	require.NoError(t, err)

	assert.True(t, res.Crisis)
	assert.Empty(t, res.Results)
	require.NotNil(t, res.CrisisSupport)
	assert.NotEmpty(t, res.CrisisSupport.Message)
	assert.NotEmpty(t, res.CrisisSupport.Hotlines)
	assert.Empty(t, index.queries, "crisis queries must never reach the index")
	assert.True(t, sessions.calmSet["s1"], "crisis must flip the session into calm mode")
}

func TestSearchCrisisWithoutSessionStillResponds(t *testing.T) {
	index := &fakeIndex{}
	svc, sessions := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "", "kill myself")
	require.NoError(t, err)
	assert.True(t, res.Crisis)
	assert.Empty(t, sessions.calmSet)
}

func TestSearchMapsHitsAndHighlights(t *testing.T) {
	index := &fakeIndex{records: []searchindex.Record{
		{
			ObjectID: "42",
			Title:    "Understanding Anxiety",
			Slug:     "understanding-anxiety",
			Excerpt:  "Anxiety is...",
			Tags:     []string{"anxiety"},
			Type:     "mental-health",
			Highlights: map[string]searchindex.Snippet{
				"title": {Value: "Understanding <em>Anxiety</em>"},
			},
		},
	}}
	svc, sessions := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "s1", "anxiety")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)

	hit := res.Results[0]
	assert.Equal(t, "42", hit.ObjectID)
	assert.Equal(t, "understanding-anxiety", hit.Slug)
	assert.Equal(t, "Understanding <em>Anxiety</em>", hit.Highlights["title"])
	assert.Equal(t, "anxiety", sessions.remembered["s1"])
}

func TestSearchIndexFailureDegradesToEmpty(t *testing.T) {
	index := &fakeIndex{err: errors.New("index down")}
	svc, _ := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "s1", "breathing exercises")
	require.NoError(t, err, "index outage must not surface as a user error")
	assert.Empty(t, res.Results)
	assert.False(t, res.Crisis)
}

func TestSearchTrimsQuery(t *testing.T) {
	index := &fakeIndex{}
	svc, _ := newSearchFixture(index)

	res, err := svc.Search(context.Background(), "s1", "  sleep  ")
	require.NoError(t, err)
	assert.Equal(t, "sleep", res.Query)
	require.Len(t, index.queries, 1)
	assert.Equal(t, "sleep", index.queries[0])
}
