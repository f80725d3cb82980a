// Package chat implements the client-side controller for the RAG backend:
// readiness polling, message exchange, history hydration and corpus
// administration. Rendering goes through a RenderSink so the controller has
// no terminal dependency.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cementgpt/cementchat/internal/api"
	"github.com/cementgpt/cementchat/internal/domain"
)

// Fallback copy used when the backend supplies no reason.
const (
	msgConnectFailed  = "Cannot connect to the server. Please make sure the backend is running."
	msgNotReady       = "System is not ready. Please check your setup."
	msgSendFailed     = "Sorry, something went wrong while processing your message."
	msgTransportError = "Unable to reach the assistant. Please check your connection and try again."
	msgCorpusLoadFail = "Failed to load corpus information."
)

// Client orchestrates the chat session. One Client owns the conversation
// state for the lifetime of the process; there is no local durability, the
// backend keeps the history.
type Client struct {
	api    *api.Client
	sink   RenderSink
	logger *zap.Logger

	mu       sync.Mutex
	status   domain.SystemStatus
	inFlight bool
	history  []domain.Message
}

// New creates a controller bound to a backend client and a render sink.
func New(apiClient *api.Client, sink RenderSink, logger *zap.Logger) *Client {
	return &Client{
		api:    apiClient,
		sink:   sink,
		logger: logger,
		status: domain.StatusChecking,
	}
}

// Status returns the last observed readiness state.
func (c *Client) Status() domain.SystemStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// History returns a copy of the recorded conversation.
func (c *Client) History() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.history))
	copy(out, c.history)
	return out
}

// CheckStatus polls backend readiness once and updates the status
// indicator. Chat input is enabled only when both readiness flags come back
// true. No retry is performed; callers re-invoke to poll again.
func (c *Client) CheckStatus(ctx context.Context) error {
	c.setStatus(domain.StatusChecking, "")

	st, err := c.api.Status(ctx)
	if err != nil {
		c.setStatus(domain.StatusOffline, msgConnectFailed)
		c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: msgConnectFailed})
		return err
	}

	if st.Ready() {
		c.setStatus(domain.StatusOnline, st.Message)
		c.logger.Info("backend online", zap.Bool("agent_loaded", st.AgentLoaded))
		return nil
	}

	reason := st.Message
	if reason == "" {
		reason = msgNotReady
	}
	c.setStatus(domain.StatusOffline, reason)
	c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: reason})
	c.logger.Warn("backend not ready", zap.String("reason", reason))
	return nil
}

// SendMessage performs one chat exchange. The user turn is rendered before
// the request is issued; the agent turn (or an error turn) is rendered after
// it settles. A second send while one is outstanding is rejected, and the
// typing placeholder is removed exactly once on every path.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyInput
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		c.logger.Debug("send rejected, request in flight")
		return domain.ErrBusy
	}
	if c.status != domain.StatusOnline {
		c.mu.Unlock()
		return domain.ErrOffline
	}
	c.inFlight = true
	c.mu.Unlock()

	c.sink.ClearInput()
	userMsg := domain.NewUserMessage(text)
	c.sink.AppendMessage(userMsg)
	c.sink.ShowTyping()

	reply, err := c.api.Chat(ctx, text)

	c.sink.HideTyping()
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()

	if err != nil {
		reason := reasonOf(err, msgSendFailed)
		var remote *api.RemoteError
		if !errors.As(err, &remote) {
			reason = msgTransportError
		}
		c.sink.AppendMessage(domain.NewErrorMessage(reason))
		c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: reason})
		return err
	}

	agentMsg := domain.NewAgentMessage(reply)
	c.sink.AppendMessage(agentMsg)

	c.mu.Lock()
	c.history = append(c.history, userMsg, agentMsg)
	c.mu.Unlock()
	return nil
}

// LoadHistory hydrates the conversation from the backend once at startup.
// A failure leaves the fresh session usable, so it is logged but not
// surfaced as a notification.
func (c *Client) LoadHistory(ctx context.Context) error {
	messages, err := c.api.History(ctx)
	if err != nil {
		c.logger.Warn("failed to load conversation history", zap.Error(err))
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	c.mu.Lock()
	c.history = messages
	c.mu.Unlock()

	for _, msg := range messages {
		c.sink.AppendMessage(msg)
	}
	c.logger.Info("conversation history loaded", zap.Int("messages", len(messages)))
	return nil
}

// ClearConversation wipes the session after an explicit yes/no gate. On
// failure the conversation is left untouched; there is no partial clear.
func (c *Client) ClearConversation(ctx context.Context) error {
	if !c.sink.Confirm("Are you sure you want to clear the conversation?") {
		return domain.ErrNotConfirmed
	}

	if err := c.api.ClearConversation(ctx); err != nil {
		reason := reasonOf(err, "Failed to clear conversation.")
		c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: reason})
		return err
	}

	c.mu.Lock()
	c.history = nil
	c.mu.Unlock()

	c.sink.ResetTranscript()
	c.sink.Notify(domain.Notification{Kind: domain.NotifySuccess, Message: "Conversation cleared."})
	return nil
}

// RefreshCorpora fetches the corpus summary blob and renders it. Failures
// show an inline placeholder in the corpus panel instead of a notification.
func (c *Client) RefreshCorpora(ctx context.Context) error {
	summary, err := c.api.ListCorpora(ctx)
	if err != nil {
		c.sink.SetCorpora(msgCorpusLoadFail)
		return err
	}
	c.sink.SetCorpora(summary)
	return nil
}

// CreateCorpus creates a named corpus, wrapped in the modal loading
// indicator. An empty name issues no request.
func (c *Client) CreateCorpus(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		c.sink.Notify(domain.Notification{Kind: domain.NotifyWarning, Message: "Please enter a corpus name."})
		return domain.ErrEmptyInput
	}

	c.sink.SetLoading(true)
	defer c.sink.SetLoading(false)

	if err := c.api.CreateCorpus(ctx, name); err != nil {
		reason := reasonOf(err, "Failed to create corpus.")
		c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: reason})
		return err
	}

	c.sink.ClearCorpusForm()
	c.sink.Notify(domain.Notification{
		Kind:    domain.NotifySuccess,
		Message: fmt.Sprintf("Corpus %q created successfully.", name),
	})
	return c.RefreshCorpora(ctx)
}

// AddDocument registers a document URL with a corpus, with the same loading
// indicator discipline as CreateCorpus. Both fields must be non-empty.
func (c *Client) AddDocument(ctx context.Context, corpusName, documentURL string) error {
	corpusName = strings.TrimSpace(corpusName)
	documentURL = strings.TrimSpace(documentURL)
	if corpusName == "" || documentURL == "" {
		c.sink.Notify(domain.Notification{Kind: domain.NotifyWarning, Message: "Please enter both a corpus name and a document URL."})
		return domain.ErrEmptyInput
	}

	c.sink.SetLoading(true)
	defer c.sink.SetLoading(false)

	if err := c.api.AddDocument(ctx, corpusName, documentURL); err != nil {
		reason := reasonOf(err, "Failed to add document.")
		c.sink.Notify(domain.Notification{Kind: domain.NotifyError, Message: reason})
		return err
	}

	c.sink.ClearDocumentForm()
	c.sink.Notify(domain.Notification{
		Kind:    domain.NotifySuccess,
		Message: fmt.Sprintf("Document added to corpus %q.", corpusName),
	})
	return nil
}

func (c *Client) setStatus(status domain.SystemStatus, detail string) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
	c.sink.SetStatus(status, detail)
}

// reasonOf extracts the server-supplied reason from an application failure,
// falling back when the failure was transport-level or carried no message.
func reasonOf(err error, fallback string) string {
	var remote *api.RemoteError
	if errors.As(err, &remote) && remote.Reason != "" {
		return remote.Reason
	}
	return fallback
}
