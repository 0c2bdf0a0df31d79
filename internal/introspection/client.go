package introspection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client fetches an introspection document from a GraphQL endpoint.
type Client struct {
	http   *http.Client
	token  string
	logger *zap.Logger
}

// NewClient creates a client. token, if non-empty, is sent as a bearer
// token on every request.
func NewClient(token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:   &http.Client{Timeout: defaultTimeout},
		token:  token,
		logger: logger,
	}
}

type queryRequest struct {
	Query string `json:"query"`
}

// Fetch POSTs the standard introspection query to endpoint and parses
// the response. A single request is made; failures surface immediately.
func (c *Client) Fetch(ctx context.Context, endpoint string) (*Document, error) {
	body, err := sonic.Marshal(queryRequest{Query: Query})
	if err != nil {
		return nil, fmt.Errorf("encoding introspection query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building introspection request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("fetching introspection document", zap.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting introspection from %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading introspection response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspection request failed: %s", resp.Status)
	}

	c.logger.Debug("introspection response received", zap.Int("bytes", len(data)))

	return Parse(data)
}
