package cms

import "github.com/google/uuid"

// Component names used by the content space.
const (
	ComponentKnowledge    = "KnowledgeArticle"
	ComponentMentalHealth = "MentalHealthArticle"
	ComponentHotline      = "Hotline"

	blockComponentKnowledge    = "KnowledgeBlock"
	blockComponentMentalHealth = "MentalHealthScript"
)

// Image is an asset reference on a story or block.
type Image struct {
	ID       int64  `json:"id,omitempty"`
	Filename string `json:"filename"`
	Alt      string `json:"alt,omitempty"`
	Title    string `json:"title,omitempty"`
	Focus    string `json:"focus,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Block is one titled content unit. Knowledge articles carry them under
// "article", mental-health articles under "script"; the latter may also carry
// a hotline callout.
type Block struct {
	UID       string `json:"_uid,omitempty"`
	Component string `json:"component"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Hotline   string `json:"hotline,omitempty"`
	Image     *Image `json:"image,omitempty"`
}

// StoryContent is the component-shaped body of a story.
type StoryContent struct {
	UID       string   `json:"_uid,omitempty"`
	Component string   `json:"component"`
	Tags      []string `json:"tags,omitempty"`
	Image     *Image   `json:"image,omitempty"`
	Article   []Block  `json:"article,omitempty"`
	Script    []Block  `json:"script,omitempty"`

	// Hotline component fields
	Country string `json:"country,omitempty"`
	Number  string `json:"number,omitempty"`
	Name    string `json:"name,omitempty"`
}

// Story is one CMS entry.
type Story struct {
	ID          int64        `json:"id"`
	UUID        string       `json:"uuid"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	FullSlug    string       `json:"full_slug"`
	CreatedAt   string       `json:"created_at"`
	PublishedAt string       `json:"published_at"`
	Content     StoryContent `json:"content"`
}

// Blocks returns the ordered content units regardless of article type.
func (s *Story) Blocks() []Block {
	if s.Content.Component == ComponentMentalHealth {
		return s.Content.Script
	}
	return s.Content.Article
}

// Title prefers the first block's title and falls back to the story name.
func (s *Story) Title() string {
	blocks := s.Blocks()
	if len(blocks) > 0 && blocks[0].Title != "" {
		return blocks[0].Title
	}
	return s.Name
}

// Body returns the first block's content, the article's lead text.
func (s *Story) Body() string {
	blocks := s.Blocks()
	if len(blocks) > 0 {
		return blocks[0].Content
	}
	return ""
}

// Tags returns the story's tag list, never nil.
func (s *Story) Tags() []string {
	if s.Content.Tags == nil {
		return []string{}
	}
	return s.Content.Tags
}

// Excerpt derives a short listing teaser from the lead text.
func (s *Story) Excerpt() string {
	return Truncate(s.Body(), 150)
}

// ImageURL returns the story image, checking the top-level image first and
// then the first block.
func (s *Story) ImageURL() string {
	if s.Content.Image != nil && s.Content.Image.Filename != "" {
		return s.Content.Image.Filename
	}
	blocks := s.Blocks()
	if len(blocks) > 0 && blocks[0].Image != nil {
		return blocks[0].Image.Filename
	}
	return ""
}

// NewBlock builds a content block of the component matching the story type.
func NewBlock(storyComponent, title, content, hotlineNumber string) Block {
	blockComponent := blockComponentKnowledge
	if storyComponent == ComponentMentalHealth {
		blockComponent = blockComponentMentalHealth
	}
	return Block{
		UID:       uuid.NewString(),
		Component: blockComponent,
		Title:     title,
		Content:   content,
		Hotline:   hotlineNumber,
	}
}

// NewStoryContent assembles a story body, placing blocks under the field the
// component expects.
func NewStoryContent(component string, blocks []Block, tags []string) StoryContent {
	content := StoryContent{
		UID:       uuid.NewString(),
		Component: component,
		Tags:      tags,
	}
	if component == ComponentMentalHealth {
		content.Script = blocks
	} else {
		content.Article = blocks
	}
	return content
}

// Truncate cuts text at limit characters, appending an ellipsis when cut.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Hotline is a CMS-managed hotline entry.
type Hotline struct {
	ID      int64  `json:"id"`
	UUID    string `json:"uuid"`
	Country string `json:"country"`
	Number  string `json:"number"`
	Name    string `json:"name,omitempty"`
}
