package searchindex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySendsHighlightsAndParsesHits(t *testing.T) {
	var captured queryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/1/indexes/knowledge_articles/query", r.URL.Path)
		require.Equal(t, "test-app", r.Header.Get("X-Algolia-Application-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(queryResponse{Hits: []Record{
			{ObjectID: "1", Title: "Mindful Breathing", Slug: "mindful-breathing"},
		}})
	}))
	defer srv.Close()

	c := NewClient("test-app", "key", "knowledge_articles")
	c.BaseURL = srv.URL

	hits, err := c.Query(context.Background(), "breathing", "")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "mindful-breathing", hits[0].Slug)

	assert.Equal(t, "breathing", captured.Query)
	assert.Equal(t, 20, captured.HitsPerPage)
	assert.Equal(t, []string{"title", "content", "tags"}, captured.AttributesToHighlight)
}

func TestSimilarToExcludesSlug(t *testing.T) {
	var captured queryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(queryResponse{})
	}))
	defer srv.Close()

	c := NewClient("test-app", "key", "knowledge_articles")
	c.BaseURL = srv.URL

	_, err := c.SimilarTo(context.Background(), "Mindful Breathing", "mindful-breathing")
	require.NoError(t, err)

	assert.Equal(t, "Mindful Breathing", captured.SimilarQuery)
	assert.Equal(t, "NOT slug:mindful-breathing", captured.Filters)
	assert.Empty(t, captured.Query)
}

func TestSaveObjectUpserts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/1/indexes/knowledge_articles/story-7", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient("test-app", "key", "knowledge_articles")
	c.BaseURL = srv.URL

	err := c.SaveObject(context.Background(), Record{ObjectID: "story-7", Title: "T"})
	require.NoError(t, err)
}

func TestSaveObjectRequiresID(t *testing.T) {
	c := NewClient("test-app", "key", "knowledge_articles")
	err := c.SaveObject(context.Background(), Record{Title: "no id"})
	assert.Error(t, err)
}

func TestQuerySurfacesServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("test-app", "key", "knowledge_articles")
	c.BaseURL = srv.URL

	_, err := c.Query(context.Background(), "anything", "")
	assert.Error(t, err)
}
