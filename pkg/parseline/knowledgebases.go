package parseline

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// KnowledgeBaseService covers knowledge base management, retrieval of
// indexed documents and chunks, vector search, chat completion and
// reconciliation.
type KnowledgeBaseService struct {
	client *Client
}

// ListKnowledgeBasesRequest holds pagination for knowledge base listings.
type ListKnowledgeBasesRequest struct {
	Limit int
	Skip  int
}

// List returns the organization's knowledge bases.
func (s *KnowledgeBaseService) List(ctx context.Context, org string, req ListKnowledgeBasesRequest) (Payload, error) {
	return s.client.do(ctx, http.MethodGet, orgPath(org, "/knowledge-bases"), listQuery(req.Limit, req.Skip), nil)
}

// CreateKnowledgeBaseRequest holds inputs for knowledge base creation.
// TagIDs is a comma-separated list of tags whose documents feed the
// knowledge base.
type CreateKnowledgeBaseRequest struct {
	Name        string
	Description string
	TagIDs      string
}

// Create creates a knowledge base.
func (s *KnowledgeBaseService) Create(ctx context.Context, org string, req CreateKnowledgeBaseRequest) (Payload, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Msg: "is required"}
	}

	body := map[string]any{"name": name}
	if description := strings.TrimSpace(req.Description); description != "" {
		body["description"] = description
	}
	if ids := splitIDList(req.TagIDs); len(ids) > 0 {
		body["tag_ids"] = ids
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/knowledge-bases"), nil, body)
}

// Get fetches a knowledge base by ID.
func (s *KnowledgeBaseService) Get(ctx context.Context, org, kbID string) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)), nil, nil)
}

// UpdateKnowledgeBaseRequest holds the sparse-patch fields for a
// knowledge base.
type UpdateKnowledgeBaseRequest struct {
	Name        string
	Description string
	TagIDs      string
}

// Update patches a knowledge base. At least one field must be provided.
func (s *KnowledgeBaseService) Update(ctx context.Context, org, kbID string, req UpdateKnowledgeBaseRequest) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		body["description"] = description
	}
	if ids := splitIDList(req.TagIDs); len(ids) > 0 {
		body["tag_ids"] = ids
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)), nil, body)
}

// Delete removes a knowledge base and synthesizes a confirmation payload.
func (s *KnowledgeBaseService) Delete(ctx context.Context, org, kbID string) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("knowledge_base", kbID), nil
}

// ListKBDocumentsRequest holds pagination for knowledge base document
// listings.
type ListKBDocumentsRequest struct {
	Limit int
	Skip  int
}

// ListDocuments returns the documents indexed into a knowledge base.
func (s *KnowledgeBaseService) ListDocuments(ctx context.Context, org, kbID string, req ListKBDocumentsRequest) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)+"/documents"), listQuery(req.Limit, req.Skip), nil)
}

// GetDocumentChunks returns the chunks extracted from a document in a
// knowledge base.
func (s *KnowledgeBaseService) GetDocumentChunks(ctx context.Context, org, kbID, documentID string) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	path := orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)+"/documents/"+url.PathEscape(documentID)+"/chunks")

	return s.client.do(ctx, http.MethodGet, path, nil, nil)
}

// SearchRequest holds inputs for a vector search within a knowledge base.
type SearchRequest struct {
	Query string
	TopK  int
}

func (r SearchRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
		validation.Field(&r.TopK, validation.Min(0)),
	)
}

// Search runs a vector search over a knowledge base.
func (s *KnowledgeBaseService) Search(ctx context.Context, org, kbID string, req SearchRequest) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}
	req.Query = strings.TrimSpace(req.Query)
	if err := req.validate(); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	body := map[string]any{"query": req.Query}
	if req.TopK > 0 {
		body["top_k"] = req.TopK
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)+"/search"), nil, body)
}

// ChatRequest holds inputs for a chat completion grounded on a knowledge
// base. Messages accepts a pre-parsed array or literal JSON text. The
// Stream flag is forwarded to the remote, but the response is consumed as
// a single buffered JSON payload.
type ChatRequest struct {
	Messages any
	Model    string
	Stream   bool
}

// Chat runs a chat completion against a knowledge base.
func (s *KnowledgeBaseService) Chat(ctx context.Context, org, kbID string, req ChatRequest) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	messages, err := parseJSONValue("messages", req.Messages)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		return nil, &ValidationError{Field: "messages", Msg: "is required"}
	}

	body := map[string]any{"messages": messages}
	if model := strings.TrimSpace(req.Model); model != "" {
		body["model"] = model
	}
	if req.Stream {
		body["stream"] = true
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)+"/chat"), nil, body)
}

// Reconcile re-synchronizes a knowledge base with its source documents.
func (s *KnowledgeBaseService) Reconcile(ctx context.Context, org, kbID string, dryRun bool) (Payload, error) {
	kbID = strings.TrimSpace(kbID)
	if kbID == "" {
		return nil, &ValidationError{Field: "knowledgeBaseId", Msg: "is required"}
	}

	query := url.Values{}
	if dryRun {
		query.Set("dry_run", "true")
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/knowledge-bases/"+url.PathEscape(kbID)+"/reconcile"), query, nil)
}

// ReconcileAll re-synchronizes every knowledge base in the organization.
func (s *KnowledgeBaseService) ReconcileAll(ctx context.Context, org string, dryRun bool) (Payload, error) {
	query := url.Values{}
	if dryRun {
		query.Set("dry_run", "true")
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/knowledge-bases/reconcile-all"), query, nil)
}
