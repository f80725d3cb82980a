// Package api provides the typed HTTP/JSON client for the RAG backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cementgpt/cementchat/internal/domain"
)

// Client talks to the backend over HTTP. It keeps a cookie jar because the
// backend keys conversation history on a session cookie; all calls from one
// Client therefore address the same conversation.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
	logger   *zap.Logger
}

// New creates a client for the backend at baseURL. A zero timeout disables
// the client-side deadline; requests then run until the transport fails or
// the context is cancelled.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: uuid.NewString(),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// ClientID returns the per-process identifier sent with every request.
func (c *Client) ClientID() string {
	return c.clientID
}

// Status fetches backend readiness. Unlike the other calls, a non-success
// discriminator is not an error here: the payload itself describes why the
// backend is not ready, and the caller decides how to surface that.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get(ctx, "/api/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends one user message and returns the agent's reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp ChatResponse
	if err := c.post(ctx, "/api/chat", ChatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	if resp.Status != StatusSuccess {
		return "", c.remoteErr("/api/chat", resp.Message)
	}
	return resp.Response, nil
}

// ClearConversation wipes the session's history on the backend.
func (c *Client) ClearConversation(ctx context.Context) error {
	var resp ClearResponse
	if err := c.post(ctx, "/api/clear-conversation", nil, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return c.remoteErr("/api/clear-conversation", resp.Message)
	}
	return nil
}

// History fetches the persisted conversation in original order.
func (c *Client) History(ctx context.Context) ([]domain.Message, error) {
	var resp HistoryResponse
	if err := c.get(ctx, "/api/conversation-history", &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusSuccess {
		return nil, c.remoteErr("/api/conversation-history", resp.Message)
	}

	messages := make([]domain.Message, 0, len(resp.History))
	for _, entry := range resp.History {
		messages = append(messages, domain.Message{
			Role:      entry.Role,
			Content:   entry.Message,
			Timestamp: parseTimestamp(entry.Timestamp),
		})
	}
	return messages, nil
}

// ListCorpora returns the corpus summary as a pre-formatted text blob.
func (c *Client) ListCorpora(ctx context.Context) (string, error) {
	var resp CorpusListResponse
	if err := c.get(ctx, "/api/corpus/list", &resp); err != nil {
		return "", err
	}
	if resp.Status != StatusSuccess {
		return "", c.remoteErr("/api/corpus/list", resp.Message)
	}
	return resp.Response, nil
}

// CreateCorpus creates a named corpus on the backend.
func (c *Client) CreateCorpus(ctx context.Context, name string) error {
	var resp CreateCorpusResponse
	req := domain.CreateCorpusRequest{Name: name}
	if err := c.post(ctx, "/api/corpus/create", req, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return c.remoteErr("/api/corpus/create", resp.Message)
	}
	return nil
}

// AddDocument registers a document URL with a corpus.
func (c *Client) AddDocument(ctx context.Context, corpusName, documentURL string) error {
	var resp AddDocumentResponse
	req := domain.AddDocumentRequest{CorpusName: corpusName, DocumentURL: documentURL}
	if err := c.post(ctx, "/api/corpus/add-document", req, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return c.remoteErr("/api/corpus/add-document", resp.Message)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// do issues one request and decodes the JSON body into out. The backend
// returns JSON envelopes even on 4xx/5xx, so decoding is attempted
// regardless of the HTTP status code; only network errors and unparseable
// bodies count as transport failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("X-Client-ID", c.clientID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("transport failure",
			zap.String("endpoint", path),
			zap.Error(err),
		)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("invalid response body",
			zap.String("endpoint", path),
			zap.Int("code", resp.StatusCode),
			zap.Error(err),
		)
		return fmt.Errorf("invalid response from %s (HTTP %d): %w", path, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) remoteErr(endpoint, reason string) error {
	c.logger.Warn("application failure",
		zap.String("endpoint", endpoint),
		zap.String("reason", reason),
	)
	return &RemoteError{Endpoint: endpoint, Reason: reason}
}

// parseTimestamp accepts both RFC 3339 stamps and the zone-less ISO-8601
// form the backend emits. Unparseable stamps map to the zero time rather
// than failing hydration.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
