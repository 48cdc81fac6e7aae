package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/pkg/calm"
	"mindwell-be/pkg/cms"
	"mindwell-be/pkg/events"
	"mindwell-be/pkg/llm"
	pktNats "mindwell-be/pkg/nats"
	"mindwell-be/pkg/searchindex"
	"mindwell-be/pkg/utils"
)

const maxRelatedArticles = 3

const knowledgeDraftPrompt = `Generate a unique Knowledge Article about general knowledge topics such as artificial intelligence, technology, science, history, current events, interesting facts, or educational content. DO NOT make it about mental health.

Requirements:
1. A compelling title
2. Content with 3-4 well-structured paragraphs (each paragraph should be 3-5 sentences)
3. 3-5 relevant tags (comma-separated)

IMPORTANT: Avoid these existing titles:
%s

Return ONLY a JSON object in this exact format:
{
  "title": "Article Title Here",
  "content": "First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph here.\n\nFourth paragraph here.",
  "tags": "tag1, tag2, tag3"
}`

const mentalHealthDraftPrompt = `Generate a unique Mental Health Article about mental health topics such as anxiety, depression, therapy, coping strategies, mindfulness, emotional wellbeing, stress management, or mental health awareness. MUST be specifically about mental health.

Requirements:
1. A compelling title
2. Content with 3-4 well-structured paragraphs (each paragraph should be 3-5 sentences)
3. 3-5 relevant tags (comma-separated)

IMPORTANT: Avoid these existing titles:
%s

Return ONLY a JSON object in this exact format:
{
  "title": "Article Title Here",
  "content": "First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph here.\n\nFourth paragraph here.",
  "tags": "tag1, tag2, tag3"
}`

const summaryPrompt = "Provide a very short summary (2-3 sentences max) of the following article:\n\n%s"

// Model output is free-form; grab the outermost JSON object if one exists.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ContentStore is the slice of the CMS client the article flow needs.
type ContentStore interface {
	FetchStories(ctx context.Context) ([]cms.Story, error)
	FetchStoryBySlug(ctx context.Context, slug string) (*cms.Story, error)
	FetchStoriesByTag(ctx context.Context, tag, excludeSlug string) ([]cms.Story, error)
	CreateStory(ctx context.Context, name, slug string, content cms.StoryContent, publish bool) (*cms.Story, error)
	UpdateStory(ctx context.Context, storyID int64, content cms.StoryContent, publish bool) (*cms.Story, error)
	UploadAsset(ctx context.Context, filename string, data []byte) (*cms.UploadedAsset, error)
}

// SearchIndexStore adds the write and similarity surface to the querier.
type SearchIndexStore interface {
	SearchIndexQuerier
	SimilarTo(ctx context.Context, referenceText, excludeSlug string) ([]searchindex.Record, error)
	SaveObject(ctx context.Context, record searchindex.Record) error
}

// CalmRewriter softens article blocks for sessions in calm mode.
type CalmRewriter interface {
	Rewrite(ctx context.Context, key string, blocks []calm.Block) []calm.Block
}

type IArticleService interface {
	GetAll(ctx context.Context, tag string) (*dto.ListArticlesResponse, error)
	Show(ctx context.Context, slug string, sessionID string) (*dto.ShowArticleResponse, error)
	Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error)
	GenerateDraft(ctx context.Context, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error)
	Summarize(ctx context.Context, slug string) (*dto.SummarizeArticleResponse, error)
	Related(ctx context.Context, slug string) (*dto.RelatedArticlesResponse, error)
	ReadAloud(ctx context.Context, slug string) (*dto.ReadAloudResponse, error)
}

type articleService struct {
	cmsClient        ContentStore
	index            SearchIndexStore
	rewriter         CalmRewriter
	sessionService   ISessionService
	llmProvider      llm.Provider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewArticleService(
	cmsClient ContentStore,
	index SearchIndexStore,
	rewriter CalmRewriter,
	sessionService ISessionService,
	llmProvider llm.Provider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IArticleService {
	return &articleService{
		cmsClient:        cmsClient,
		index:            index,
		rewriter:         rewriter,
		sessionService:   sessionService,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// GetAll lists the catalog. The tag facet is aggregated over every story so
// the filter chips stay stable while a tag filter is active.
func (s *articleService) GetAll(ctx context.Context, tag string) (*dto.ListArticlesResponse, error) {
	stories, err := s.cmsClient.FetchStories(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]dto.ArticleSummary, 0, len(stories))
	tagSet := make(map[string]struct{})
	for i := range stories {
		story := &stories[i]
		for _, t := range story.Tags() {
			tagSet[t] = struct{}{}
		}
		if tag != "" && !hasTag(story.Tags(), tag) {
			continue
		}
		articles = append(articles, toArticleSummary(story))
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &dto.ListArticlesResponse{
		Articles: articles,
		Tags:     tags,
	}, nil
}

func (s *articleService) Show(ctx context.Context, slug string, sessionID string) (*dto.ShowArticleResponse, error) {
	story, err := s.cmsClient.FetchStoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return nil, serverutils.NewApiError(404, "Article not found")
		}
		return nil, err
	}

	blocks := toCalmBlocks(story.Blocks())
	calmApplied := false
	if s.sessionService.IsCalm(ctx, sessionID) {
		blocks = s.rewriter.Rewrite(ctx, story.Slug, blocks)
		calmApplied = true
	}

	res := &dto.ShowArticleResponse{
		Id:          story.ID,
		Uuid:        story.UUID,
		Slug:        story.Slug,
		Title:       story.Title(),
		ImageUrl:    story.ImageURL(),
		Tags:        story.Tags(),
		Type:        componentToType(story.Content.Component),
		Blocks:      make([]dto.BlockResponse, 0, len(blocks)),
		CalmApplied: calmApplied,
		PublishedAt: story.PublishedAt,
	}
	for _, b := range blocks {
		res.Blocks = append(res.Blocks, dto.BlockResponse{
			Title:    b.Title,
			Content:  b.Content,
			ImageUrl: b.ImageURL,
			Hotline:  b.Hotline,
		})
	}
	return res, nil
}

func (s *articleService) Create(ctx context.Context, req *dto.CreateArticleRequest) (*dto.CreateArticleResponse, error) {
	component := typeToComponent(req.Type)
	slug := utils.Slugify(req.Title)
	if slug == "" {
		return nil, serverutils.NewApiError(400, "Title produces an empty slug")
	}

	block := cms.NewBlock(component, req.Title, req.Content, req.Hotline)
	content := cms.NewStoryContent(component, []cms.Block{block}, normalizeTags(req.Tags))

	story, err := s.cmsClient.CreateStory(ctx, req.Title, slug, content, true)
	if err != nil {
		return nil, err
	}

	// The image rides in a second round trip. The article is already valid
	// without it, so a failed attach is logged, not surfaced.
	if req.Image != nil {
		if err := s.attachImage(ctx, story, content, req.Image); err != nil {
			s.logger.Warn("ArticleService", "Image attach failed", map[string]interface{}{
				"slug":  slug,
				"error": err.Error(),
			})
		}
	}

	s.publishIndexMessage(ctx, story.ID, slug)

	// Publish event for other instances / side channels
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeArticleCreated,
			Data: map[string]interface{}{
				"story_id": story.ID,
				"slug":     slug,
				"title":    req.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ArticleService", "Failed to publish ARTICLE_CREATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateArticleResponse{
		Id:   story.ID,
		Slug: slug,
	}, nil
}

func (s *articleService) attachImage(ctx context.Context, story *cms.Story, content cms.StoryContent, image *dto.InlineImage) error {
	data, err := decodeInlineImage(image.Data)
	if err != nil {
		return err
	}

	asset, err := s.cmsClient.UploadAsset(ctx, image.Filename, data)
	if err != nil {
		return err
	}

	content.Image = &cms.Image{
		ID:       asset.ID,
		Filename: asset.URL,
	}
	_, err = s.cmsClient.UpdateStory(ctx, story.ID, content, true)
	return err
}

func (s *articleService) publishIndexMessage(ctx context.Context, storyID int64, slug string) {
	payload, err := json.Marshal(dto.PublishIndexArticleMessage{
		StoryId: storyID,
		Slug:    slug,
	})
	if err != nil {
		return
	}
	// Index sync is a best-effort side channel; the article exists even if
	// the message never makes it.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("ArticleService", "Failed to publish index message", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
	}
}

func (s *articleService) GenerateDraft(ctx context.Context, req *dto.GenerateDraftRequest) (*dto.GenerateDraftResponse, error) {
	existingTitles := []string{}
	if stories, err := s.cmsClient.FetchStories(ctx); err == nil {
		for _, story := range stories {
			existingTitles = append(existingTitles, story.Name)
		}
	} else {
		s.logger.Warn("ArticleService", "Could not fetch existing titles for draft prompt", map[string]interface{}{
			"error": err.Error(),
		})
	}

	template := knowledgeDraftPrompt
	if req.Type == "mental-health" {
		template = mentalHealthDraftPrompt
	}
	prompt := fmt.Sprintf(template, strings.Join(existingTitles, ", "))

	raw, err := s.llmProvider.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("ArticleService", "Draft generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewApiError(502, "Failed to generate content")
	}

	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, serverutils.NewApiError(502, "Failed to parse AI response")
	}

	var parsed struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return nil, serverutils.NewApiError(502, "Failed to parse AI response")
	}
	if parsed.Title == "" || parsed.Content == "" {
		return nil, serverutils.NewApiError(502, "Failed to parse AI response")
	}

	return &dto.GenerateDraftResponse{
		Title:   parsed.Title,
		Content: parsed.Content,
		Tags:    splitTags(parsed.Tags),
	}, nil
}

func (s *articleService) Summarize(ctx context.Context, slug string) (*dto.SummarizeArticleResponse, error) {
	story, err := s.cmsClient.FetchStoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return nil, serverutils.NewApiError(404, "Article not found")
		}
		return nil, err
	}

	fullContent := joinBlockContents(story.Blocks())
	if fullContent == "" {
		return nil, serverutils.NewApiError(422, "Article has no content to summarize")
	}

	summary, err := s.llmProvider.Generate(ctx, fmt.Sprintf(summaryPrompt, fullContent))
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			s.logger.Error("ArticleService", "Summarization failed", map[string]interface{}{
				"slug":  slug,
				"error": err.Error(),
			})
		}
		return nil, serverutils.NewApiError(502, "Failed to generate summary")
	}

	return &dto.SummarizeArticleResponse{
		Slug:    slug,
		Summary: strings.TrimSpace(summary),
	}, nil
}

// Related resolves up to three companions for an article: similarity search
// first, then articles sharing the first tag, re-ranked through the index
// when possible. Every failure degrades to a smaller or empty list.
func (s *articleService) Related(ctx context.Context, slug string) (*dto.RelatedArticlesResponse, error) {
	story, err := s.cmsClient.FetchStoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return nil, serverutils.NewApiError(404, "Article not found")
		}
		return nil, err
	}

	records, err := s.index.SimilarTo(ctx, story.Title(), slug)
	if err != nil {
		s.logger.Warn("ArticleService", "Similarity lookup failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		records = nil
	}

	articles := recordsToSummaries(records)

	if len(articles) == 0 && len(story.Tags()) > 0 {
		articles = s.relatedByTag(ctx, story, slug)
	}

	if len(articles) > maxRelatedArticles {
		articles = articles[:maxRelatedArticles]
	}
	return &dto.RelatedArticlesResponse{Articles: articles}, nil
}

func (s *articleService) relatedByTag(ctx context.Context, story *cms.Story, slug string) []dto.ArticleSummary {
	tagged, err := s.cmsClient.FetchStoriesByTag(ctx, story.Tags()[0], slug)
	if err != nil {
		s.logger.Warn("ArticleService", "Tag fallback failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		return []dto.ArticleSummary{}
	}
	if len(tagged) == 0 {
		return []dto.ArticleSummary{}
	}

	// Ask the index to order the tag matches by relevance to this article.
	names := make([]string, 0, len(tagged))
	for _, t := range tagged {
		names = append(names, t.Name)
	}
	reRanked, err := s.index.Query(ctx, strings.Join(names, " "), "NOT slug:"+slug)
	if err == nil && len(reRanked) > 0 {
		return recordsToSummaries(reRanked)
	}

	summaries := make([]dto.ArticleSummary, 0, len(tagged))
	for i := range tagged {
		summaries = append(summaries, toArticleSummary(&tagged[i]))
	}
	return summaries
}

func (s *articleService) ReadAloud(ctx context.Context, slug string) (*dto.ReadAloudResponse, error) {
	story, err := s.cmsClient.FetchStoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			return nil, serverutils.NewApiError(404, "Article not found")
		}
		return nil, err
	}

	parts := make([]string, 0, len(story.Blocks()))
	for _, block := range story.Blocks() {
		piece := strings.TrimSpace(block.Title)
		if piece != "" && !strings.HasSuffix(piece, ".") {
			piece += "."
		}
		if content := strings.TrimSpace(block.Content); content != "" {
			if piece != "" {
				piece += " "
			}
			piece += content
		}
		if piece != "" {
			parts = append(parts, piece)
		}
	}

	return &dto.ReadAloudResponse{
		Slug: slug,
		Text: strings.Join(parts, "\n\n"),
	}, nil
}

// --- helpers ---

func toArticleSummary(story *cms.Story) dto.ArticleSummary {
	return dto.ArticleSummary{
		Id:       story.ID,
		Uuid:     story.UUID,
		Slug:     story.Slug,
		Title:    story.Title(),
		Excerpt:  story.Excerpt(),
		ImageUrl: story.ImageURL(),
		Tags:     story.Tags(),
		Type:     componentToType(story.Content.Component),
	}
}

func recordsToSummaries(records []searchindex.Record) []dto.ArticleSummary {
	out := make([]dto.ArticleSummary, 0, len(records))
	for _, r := range records {
		id, _ := strconv.ParseInt(r.ObjectID, 10, 64)
		out = append(out, dto.ArticleSummary{
			Id:       id,
			Slug:     r.Slug,
			Title:    r.Title,
			Excerpt:  r.Excerpt,
			ImageUrl: r.ImageURL,
			Tags:     r.Tags,
			Type:     r.Type,
		})
	}
	return out
}

func toCalmBlocks(blocks []cms.Block) []calm.Block {
	out := make([]calm.Block, 0, len(blocks))
	for _, b := range blocks {
		cb := calm.Block{
			Title:   b.Title,
			Content: b.Content,
			Hotline: b.Hotline,
		}
		if b.Image != nil {
			cb.ImageURL = b.Image.Filename
		}
		out = append(out, cb)
	}
	return out
}

func joinBlockContents(blocks []cms.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if content := strings.TrimSpace(b.Content); content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n\n")
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func componentToType(component string) string {
	if component == cms.ComponentMentalHealth {
		return "mental-health"
	}
	return "knowledge"
}

func typeToComponent(articleType string) string {
	if articleType == "mental-health" {
		return cms.ComponentMentalHealth
	}
	return cms.ComponentKnowledge
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func splitTags(raw string) []string {
	return normalizeTags(strings.Split(raw, ","))
}

// decodeInlineImage accepts bare base64 or a full data URL.
func decodeInlineImage(data string) ([]byte, error) {
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(data)
}
