package domain

// Corpus references a named, backend-managed document collection.
// The name is the only identifying attribute the client uses; corpus
// contents are opaque and owned by the backend.
type Corpus struct {
	Name string `json:"name"`
}

// CreateCorpusRequest is the request to create a corpus.
type CreateCorpusRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddDocumentRequest is the request to add a document to a corpus.
type AddDocumentRequest struct {
	CorpusName  string `json:"corpus_name" binding:"required"`
	DocumentURL string `json:"document_url" binding:"required"`
}
