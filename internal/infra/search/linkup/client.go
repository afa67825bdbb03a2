package linkup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/bryanwahyu/skin-triage/internal/domain/triage"
	"github.com/bryanwahyu/skin-triage/internal/infra/ai/prompt"
)

const defaultBaseURL = "https://api.linkup.so/v1"

// Client calls Linkup's "deep search with sourced answer" API. There is no
// published Go SDK, so this is a thin REST adapter. Optional: callers treat
// a nil *Client as the dependency being absent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type searchRequest struct {
	Query      string `json:"q"`
	Depth      string `json:"depth"`
	OutputType string `json:"outputType"`
}

// search issues one deep sourcedAnswer query and decodes whatever JSON the
// service replies with. The shape is deliberately left open.
func (c *Client) search(ctx context.Context, query string) (any, error) {
	body, err := json.Marshal(searchRequest{Query: query, Depth: "deep", OutputType: "sourcedAnswer"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelCall, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelCall, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelCall, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: linkup returned status %d: %s", domain.ErrModelCall, resp.StatusCode, bytes.TrimSpace(raw))
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// Non-JSON body: keep it as text, the callers can still render it.
		return string(raw), nil
	}
	return decoded, nil
}

// FindSpecialists runs one practitioner search and returns the service's
// response untransformed. One attempt, no retry.
func (c *Client) FindSpecialists(ctx context.Context, label, location string) (any, error) {
	return c.search(ctx, prompt.SpecialistQuery(label, location))
}
