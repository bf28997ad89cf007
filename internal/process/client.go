package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tunegrab/tunegrab/internal/model"
)

const (
	// ProcessPath is the processing endpoint path on the backend.
	ProcessPath = "/process-link"

	// DefaultRequestTimeout bounds a single processing request.
	DefaultRequestTimeout = 30 * time.Second
)

// processRequest is the request body for the processing endpoint.
type processRequest struct {
	URL string `json:"url"`
}

// errorResponse is the conventional error body shape of the processing API.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Client calls the remote link processing service. The caller's context
// deadline bounds each request; timeout is only a fallback for contexts
// without one, so a reconfigured deadline takes effect immediately.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewClient creates a client for the processing service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
	}
}

// SetBaseURL points the client at a different service endpoint.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// ProcessLink submits the link and decodes the processing result. The link is
// forwarded as-is, empty strings included; validation is the backend's job.
func (c *Client) ProcessLink(ctx context.Context, link string) (*model.ProcessResult, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(processRequest{URL: link})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	c.mu.RLock()
	endpoint := c.baseURL + ProcessPath
	c.mu.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, newError(KindTimeout, MsgTimeout)
		}
		return nil, newError(KindNetwork, "")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Prefer the server-supplied detail message when one exists.
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return nil, newError(KindServer, errResp.Detail)
		}
		return nil, newError(KindServer, "")
	}

	var dto model.ProcessResultDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, newError(KindBadResponse, MsgUnexpectedResponse)
	}
	if dto.Metadata.Title == "" || dto.Metadata.Channel == "" {
		// Title and channel are required by the contract; a body without them
		// must not reach the render path.
		return nil, newError(KindBadResponse, MsgUnexpectedResponse)
	}

	return dto.ToResult(), nil
}

// isTimeout reports whether the transport error was a deadline expiry rather
// than a plain connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
