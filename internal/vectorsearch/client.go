// Package vectorsearch provides the client for the external embedding and
// vector-search collaborator: a Qdrant collection reached over REST plus a
// Gemini embedding model. The core treats search as a black box returning
// "larger score is better" candidates; score adaptation happens here so no
// downstream stage needs to know the underlying metric.
package vectorsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payload field names stored with every indexed resume document.
const (
	payloadRowIndex = "row_index"
	payloadCategory = "category"
	payloadSource   = "source"
	payloadText     = "text"
)

// ScoredPoint is one raw hit from the vector index.
type ScoredPoint struct {
	ID      string         `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// Point is one document to upsert into the index.
type Point struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

// Client talks to a Qdrant collection over its REST API.
type Client struct {
	baseURL    string
	apiKey     string
	collection string
	httpClient *http.Client
}

// NewClient creates a Qdrant REST client for one collection.
func NewClient(baseURL, apiKey, collection string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		collection: collection,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type searchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
}

type searchResponse struct {
	Result []struct {
		ID      any            `json:"id"`
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
}

// Search returns the top-limit points most similar to the query vector,
// best-first as ordered by the index. Collaborator failures are returned
// as-is; the caller treats them as fatal for the request.
func (c *Client) Search(ctx context.Context, vector []float32, limit int) ([]ScoredPoint, error) {
	body := searchRequest{Vector: vector, Limit: limit, WithPayload: true}

	var resp searchResponse
	path := fmt.Sprintf("/collections/%s/points/search", c.collection)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	points := make([]ScoredPoint, 0, len(resp.Result))
	for _, r := range resp.Result {
		points = append(points, ScoredPoint{
			ID:      fmt.Sprintf("%v", r.ID),
			Score:   r.Score,
			Payload: r.Payload,
		})
	}
	return points, nil
}

type upsertRequest struct {
	Points []Point `json:"points"`
}

// Upsert writes points into the collection. Used only by the offline
// ingestion tool, never at request time.
func (c *Client) Upsert(ctx context.Context, points []Point) error {
	path := fmt.Sprintf("/collections/%s/points?wait=true", c.collection)
	if err := c.do(ctx, http.MethodPut, path, upsertRequest{Points: points}, nil); err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

type createCollectionRequest struct {
	Vectors struct {
		Size     int    `json:"size"`
		Distance string `json:"distance"`
	} `json:"vectors"`
}

// EnsureCollection creates the collection with a cosine-distance vector
// config if it does not already exist.
func (c *Client) EnsureCollection(ctx context.Context, dim int) error {
	path := fmt.Sprintf("/collections/%s", c.collection)
	if err := c.do(ctx, http.MethodGet, path, nil, nil); err == nil {
		return nil
	}

	var req createCollectionRequest
	req.Vectors.Size = dim
	req.Vectors.Distance = "Cosine"
	if err := c.do(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("create collection failed: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("qdrant returned status %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}
