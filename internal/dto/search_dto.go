package dto

type SearchHit struct {
	ObjectID   string            `json:"object_id"`
	Slug       string            `json:"slug"`
	Title      string            `json:"title"`
	Excerpt    string            `json:"excerpt"`
	Tags       []string          `json:"tags"`
	Type       string            `json:"type"`
	ImageUrl   string            `json:"image_url,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

type CrisisSupport struct {
	Message  string            `json:"message"`
	Hotlines []HotlineResponse `json:"hotlines"`
}

type SearchResponse struct {
	Query         string         `json:"query"`
	Crisis        bool           `json:"crisis"`
	Results       []SearchHit    `json:"results"`
	CrisisSupport *CrisisSupport `json:"crisis_support,omitempty"`
}
