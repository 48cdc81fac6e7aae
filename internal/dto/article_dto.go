package dto

type BlockResponse struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageUrl string `json:"image_url,omitempty"`
	Hotline  string `json:"hotline,omitempty"`
}

type ArticleSummary struct {
	Id       int64    `json:"id"`
	Uuid     string   `json:"uuid"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	ImageUrl string   `json:"image_url,omitempty"`
	Tags     []string `json:"tags"`
	Type     string   `json:"type"`
}

type ListArticlesResponse struct {
	Articles []ArticleSummary `json:"articles"`
	Tags     []string         `json:"tags"`
}

type ShowArticleResponse struct {
	Id          int64           `json:"id"`
	Uuid        string          `json:"uuid"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	ImageUrl    string          `json:"image_url,omitempty"`
	Tags        []string        `json:"tags"`
	Type        string          `json:"type"`
	Blocks      []BlockResponse `json:"blocks"`
	CalmApplied bool            `json:"calm_applied"`
	PublishedAt string          `json:"published_at,omitempty"`
}

type CreateArticleRequest struct {
	Title   string       `json:"title" validate:"required"`
	Type    string       `json:"type" validate:"required,oneof=knowledge mental-health"`
	Content string       `json:"content" validate:"required"`
	Tags    []string     `json:"tags"`
	Hotline string       `json:"hotline"`
	Image   *InlineImage `json:"image"`
}

// InlineImage carries an upload as base64 so article creation is a single
// request from the client even though the CMS needs a separate asset flow.
type InlineImage struct {
	Filename string `json:"filename" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

type CreateArticleResponse struct {
	Id   int64  `json:"id"`
	Slug string `json:"slug"`
}

type GenerateDraftRequest struct {
	Type string `json:"type" validate:"required,oneof=knowledge mental-health"`
}

type GenerateDraftResponse struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type SummarizeArticleResponse struct {
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
}

type RelatedArticlesResponse struct {
	Articles []ArticleSummary `json:"articles"`
}

type ReadAloudResponse struct {
	Slug string `json:"slug"`
	Text string `json:"text"`
}

// PublishIndexArticleMessage is the payload handed to the message bus when
// an article should be (re)pushed into the search index.
type PublishIndexArticleMessage struct {
	StoryId int64  `json:"story_id"`
	Slug    string `json:"slug"`
}
