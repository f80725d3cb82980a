package api

// Every backend response carries a "status" discriminator. Any value other
// than StatusSuccess is treated as an application failure, with "message"
// as the human-readable reason.
const StatusSuccess = "success"

// StatusResponse is the payload of GET /api/status.
type StatusResponse struct {
	Status              string `json:"status"`
	Message             string `json:"message"`
	RAGAvailable        bool   `json:"rag_available"`
	VertexAIInitialized bool   `json:"vertex_ai_initialized"`
	AgentLoaded         bool   `json:"agent_loaded"`
}

// Ready reports whether the backend accepts chat.
func (r *StatusResponse) Ready() bool {
	return r.RAGAvailable && r.VertexAIInitialized
}

// ChatRequest is the payload of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the payload returned by POST /api/chat.
type ChatResponse struct {
	Status    string `json:"status"`
	Response  string `json:"response"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ClearResponse is the payload returned by POST /api/clear-conversation.
type ClearResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HistoryEntry is one persisted turn in GET /api/conversation-history.
type HistoryEntry struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HistoryResponse is the payload of GET /api/conversation-history.
type HistoryResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	History []HistoryEntry `json:"history"`
}

// CorpusListResponse is the payload of GET /api/corpus/list. The corpus
// summary arrives as a pre-formatted text blob, not structured data.
type CorpusListResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
	Message  string `json:"message"`
}

// CreateCorpusResponse is the payload returned by POST /api/corpus/create.
type CreateCorpusResponse struct {
	Status     string `json:"status"`
	Response   string `json:"response"`
	Message    string `json:"message"`
	CorpusName string `json:"corpus_name"`
}

// AddDocumentResponse is the payload returned by POST /api/corpus/add-document.
type AddDocumentResponse struct {
	Status   string `json:"status"`
	Response string `json:"response"`
	Message  string `json:"message"`
}
