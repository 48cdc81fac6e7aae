package service

import (
	"context"
	"strings"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/pkg/crisis"
	"mindwell-be/pkg/searchindex"
)

const minQueryLength = 2

const crisisSupportMessage = "You are not alone. If you are going through a difficult time, free and confidential support is available right now."

// SearchIndexQuerier is the slice of the index client the search flow needs.
type SearchIndexQuerier interface {
	Query(ctx context.Context, text, filters string) ([]searchindex.Record, error)
}

type ISearchService interface {
	Search(ctx context.Context, sessionID, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	index          SearchIndexQuerier
	sessionService ISessionService
	hotlineService IHotlineService
	logger         logger.ILogger
}

func NewSearchService(
	index SearchIndexQuerier,
	sessionService ISessionService,
	hotlineService IHotlineService,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		index:          index,
		sessionService: sessionService,
		hotlineService: hotlineService,
		logger:         log,
	}
}

// Search runs one query. Crisis language short-circuits before the index is
// ever contacted: the response carries hotline support instead of results,
// and the caller's session is flipped into calm mode.
func (s *searchService) Search(ctx context.Context, sessionID, query string) (*dto.SearchResponse, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < minQueryLength {
		return &dto.SearchResponse{Query: trimmed, Results: []dto.SearchHit{}}, nil
	}

	if verdict := crisis.Classify(trimmed); verdict.Crisis {
		s.logger.Info("SearchService", "Crisis language detected", map[string]interface{}{
			"keyword": verdict.Keyword,
		})

		if sessionID != "" {
			if _, err := s.sessionService.SetCalm(ctx, sessionID, true); err != nil {
				s.logger.Warn("SearchService", "Failed to set calm mode", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
			}
		}

		return &dto.SearchResponse{
			Query:   trimmed,
			Crisis:  true,
			Results: []dto.SearchHit{},
			CrisisSupport: &dto.CrisisSupport{
				Message:  crisisSupportMessage,
				Hotlines: s.hotlineService.CrisisFallback(),
			},
		}, nil
	}

	s.sessionService.RememberQuery(ctx, sessionID, trimmed)

	records, err := s.index.Query(ctx, trimmed, "")
	if err != nil {
		// The index being down should read as "nothing found", not an error
		// page, so the searcher can keep browsing.
		s.logger.Error("SearchService", "Index query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &dto.SearchResponse{Query: trimmed, Results: []dto.SearchHit{}}, nil
	}

	return &dto.SearchResponse{
		Query:   trimmed,
		Results: toSearchHits(records),
	}, nil
}

func toSearchHits(records []searchindex.Record) []dto.SearchHit {
	hits := make([]dto.SearchHit, 0, len(records))
	for _, r := range records {
		hit := dto.SearchHit{
			ObjectID: r.ObjectID,
			Slug:     r.Slug,
			Title:    r.Title,
			Excerpt:  r.Excerpt,
			Tags:     r.Tags,
			Type:     r.Type,
			ImageUrl: r.ImageURL,
		}
		if len(r.Highlights) > 0 {
			hit.Highlights = make(map[string]string, len(r.Highlights))
			for field, snippet := range r.Highlights {
				hit.Highlights[field] = snippet.Value
			}
		}
		hits = append(hits, hit)
	}
	return hits
}
