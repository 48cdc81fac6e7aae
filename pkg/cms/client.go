// Package cms is a thin client for the headless content store. It talks to
// two endpoints: the public delivery API (read-only, token in query) and the
// management API (writes, token in Authorization header). Asset upload is a
// three-step handshake: register the asset, post the bytes to the returned
// signed form URL, then look the asset up to learn its id.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultDeliveryBaseURL   = "https://api.storyblok.com/v2"
	defaultManagementBaseURL = "https://mapi.storyblok.com/v1"
)

// ErrNotFound marks a delivery lookup that came back 404.
var ErrNotFound = errors.New("cms: not found")

type Client struct {
	SpaceID         string
	DeliveryToken   string
	ManagementToken string

	DeliveryBaseURL   string
	ManagementBaseURL string
	HTTPClient        *http.Client
}

func NewClient(spaceID, deliveryToken, managementToken string) *Client {
	return &Client{
		SpaceID:           spaceID,
		DeliveryToken:     deliveryToken,
		ManagementToken:   managementToken,
		DeliveryBaseURL:   defaultDeliveryBaseURL,
		ManagementBaseURL: defaultManagementBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Delivery API (reads) ---

type storiesResponse struct {
	Stories []Story `json:"stories"`
}

type storyResponse struct {
	Story Story `json:"story"`
}

// FetchStories lists all published articles of both components.
func (c *Client) FetchStories(ctx context.Context) ([]Story, error) {
	q := url.Values{}
	q.Set("version", "published")
	q.Set("filter_query[component][in]", ComponentKnowledge+","+ComponentMentalHealth)
	q.Set("per_page", "100")

	var res storiesResponse
	if err := c.deliveryGet(ctx, "/cdn/stories", q, &res); err != nil {
		return nil, err
	}
	return res.Stories, nil
}

// FetchStoryBySlug returns one published story, or an error when absent.
func (c *Client) FetchStoryBySlug(ctx context.Context, slug string) (*Story, error) {
	q := url.Values{}
	q.Set("version", "published")

	var res storyResponse
	if err := c.deliveryGet(ctx, "/cdn/stories/"+url.PathEscape(slug), q, &res); err != nil {
		return nil, err
	}
	return &res.Story, nil
}

// FetchStoriesByTag lists published articles carrying a tag, excluding one slug.
// Used as the related-articles fallback when the search index has no answer.
func (c *Client) FetchStoriesByTag(ctx context.Context, tag, excludeSlug string) ([]Story, error) {
	q := url.Values{}
	q.Set("version", "published")
	q.Set("with_tag", tag)
	q.Set("per_page", "4")
	if excludeSlug != "" {
		q.Set("excluding_slugs", excludeSlug)
	}

	var res storiesResponse
	if err := c.deliveryGet(ctx, "/cdn/stories", q, &res); err != nil {
		return nil, err
	}
	return res.Stories, nil
}

// FetchHotlines lists CMS-managed hotline entries.
func (c *Client) FetchHotlines(ctx context.Context) ([]Hotline, error) {
	q := url.Values{}
	q.Set("version", "published")
	q.Set("filter_query[component][in]", ComponentHotline)
	q.Set("per_page", "100")

	var res storiesResponse
	if err := c.deliveryGet(ctx, "/cdn/stories", q, &res); err != nil {
		return nil, err
	}

	hotlines := make([]Hotline, 0, len(res.Stories))
	for _, story := range res.Stories {
		country := story.Content.Country
		if country == "" {
			country = story.Name
		}
		hotlines = append(hotlines, Hotline{
			ID:      story.ID,
			UUID:    story.UUID,
			Country: country,
			Number:  story.Content.Number,
			Name:    story.Content.Name,
		})
	}
	return hotlines, nil
}

func (c *Client) deliveryGet(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("token", c.DeliveryToken)
	endpoint := c.DeliveryBaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("cms delivery error, code %d, body %s", res.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}

// --- Management API (writes) ---

type storyPayload struct {
	Story   storyBody `json:"story"`
	Publish bool      `json:"publish"`
}

type storyBody struct {
	Name    string        `json:"name,omitempty"`
	Slug    string        `json:"slug,omitempty"`
	Content *StoryContent `json:"content,omitempty"`
}

// CreateStory creates and optionally publishes a story, returning the created
// record with its assigned id.
func (c *Client) CreateStory(ctx context.Context, name, slug string, content StoryContent, publish bool) (*Story, error) {
	payload := storyPayload{
		Story:   storyBody{Name: name, Slug: slug, Content: &content},
		Publish: publish,
	}

	var res storyResponse
	if err := c.managementJSON(ctx, "POST", "/spaces/"+c.SpaceID+"/stories", payload, http.StatusCreated, &res); err != nil {
		return nil, err
	}
	return &res.Story, nil
}

// UpdateStory replaces a story's content. Used for the second round trip that
// attaches an uploaded image after creation.
func (c *Client) UpdateStory(ctx context.Context, storyID int64, content StoryContent, publish bool) (*Story, error) {
	payload := storyPayload{
		Story:   storyBody{Content: &content},
		Publish: publish,
	}

	var res storyResponse
	path := fmt.Sprintf("/spaces/%s/stories/%d", c.SpaceID, storyID)
	if err := c.managementJSON(ctx, "PUT", path, payload, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return &res.Story, nil
}

func (c *Client) managementJSON(ctx context.Context, method, path string, payload interface{}, wantStatus int, out interface{}) error {
	reqJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.ManagementBaseURL+path, bytes.NewBuffer(reqJson))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.ManagementToken)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != wantStatus {
		return fmt.Errorf("cms management error, code %d, body %s", res.StatusCode, string(body))
	}

	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

// --- Asset upload ---

type assetInitResponse struct {
	ID      int64             `json:"id"`
	Fields  map[string]string `json:"fields"`
	PostURL string            `json:"post_url"`
}

type assetSearchResponse struct {
	Assets []struct {
		ID       int64  `json:"id"`
		Filename string `json:"filename"`
	} `json:"assets"`
}

// UploadedAsset identifies a stored asset.
type UploadedAsset struct {
	ID  int64
	URL string
}

// UploadAsset registers an asset, posts the bytes to the signed form URL and
// resolves the stored asset's id and public URL.
func (c *Client) UploadAsset(ctx context.Context, filename string, data []byte) (*UploadedAsset, error) {
	// Step 1: register the upload
	var initRes assetInitResponse
	initPayload := map[string]string{"filename": filename}
	if err := c.managementJSON(ctx, "POST", "/spaces/"+c.SpaceID+"/assets", initPayload, http.StatusOK, &initRes); err != nil {
		return nil, fmt.Errorf("asset init failed: %w", err)
	}

	// Step 2: post the file to the signed form URL
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	for key, value := range initRes.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	formReq, err := http.NewRequestWithContext(ctx, "POST", initRes.PostURL, &form)
	if err != nil {
		return nil, err
	}
	formReq.Header.Set("Content-Type", writer.FormDataContentType())

	formRes, err := c.HTTPClient.Do(formReq)
	if err != nil {
		return nil, err
	}
	defer formRes.Body.Close()
	if formRes.StatusCode >= 300 {
		return nil, fmt.Errorf("asset form upload failed, code %d", formRes.StatusCode)
	}

	// Step 3: look the asset up to learn its id and final URL
	q := url.Values{}
	q.Set("filter_query[filename][like]", filename)

	searchReq, err := http.NewRequestWithContext(ctx, "GET", c.ManagementBaseURL+"/spaces/"+c.SpaceID+"/assets?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	searchReq.Header.Set("Authorization", c.ManagementToken)

	searchRes, err := c.HTTPClient.Do(searchReq)
	if err != nil {
		return nil, err
	}
	defer searchRes.Body.Close()

	body, err := io.ReadAll(searchRes.Body)
	if err != nil {
		return nil, err
	}
	if searchRes.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset lookup failed, code %d, body %s", searchRes.StatusCode, string(body))
	}

	var search assetSearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, err
	}
	if len(search.Assets) == 0 {
		return nil, fmt.Errorf("uploaded asset not found")
	}

	asset := search.Assets[0]
	return &UploadedAsset{ID: asset.ID, URL: asset.Filename}, nil
}
