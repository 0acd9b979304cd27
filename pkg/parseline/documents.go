package parseline

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DocumentService covers document upload, retrieval, listing, update and
// deletion within an organization.
type DocumentService struct {
	client *Client
}

// UploadDocumentRequest holds inputs for a document upload. TagIDs is a
// comma-separated list; Metadata accepts a pre-parsed object or literal
// JSON text.
type UploadDocumentRequest struct {
	Name     string
	Content  []byte
	TagIDs   string
	Metadata any
}

func (r UploadDocumentRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

// Upload creates a document from binary content. The content is
// base64-encoded into the request body; optional fields are omitted
// entirely when empty.
func (s *DocumentService) Upload(ctx context.Context, org string, req UploadDocumentRequest) (Payload, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := req.validate(); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	doc := map[string]any{
		"name":    req.Name,
		"content": base64.StdEncoding.EncodeToString(req.Content),
	}
	if ids := splitIDList(req.TagIDs); len(ids) > 0 {
		doc["tag_ids"] = ids
	}
	metadata, err := parseJSONObject("metadata", req.Metadata)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		doc["metadata"] = metadata
	}

	body := map[string]any{"documents": []any{doc}}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/documents"), nil, body)
}

// GetDocumentRequest holds optional flags for document retrieval,
// forwarded as query parameters.
type GetDocumentRequest struct {
	FileType string
}

// Get fetches a document by ID.
func (s *DocumentService) Get(ctx context.Context, org, documentID string, req GetDocumentRequest) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	query := url.Values{}
	if fileType := strings.TrimSpace(req.FileType); fileType != "" {
		query.Set("file_type", fileType)
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/documents/"+url.PathEscape(documentID)), query, nil)
}

// ListDocumentsRequest holds pagination and search filters for document
// listings.
type ListDocumentsRequest struct {
	Limit          int
	Skip           int
	TagIDs         string
	NameSearch     string
	MetadataSearch string
}

// List returns documents matching the filters. Always a single aggregate
// call regardless of caller batch size.
func (s *DocumentService) List(ctx context.Context, org string, req ListDocumentsRequest) (Payload, error) {
	query := listQuery(req.Limit, req.Skip)
	if ids := splitIDList(req.TagIDs); len(ids) > 0 {
		query.Set("tag_ids", strings.Join(ids, ","))
	}
	if name := strings.TrimSpace(req.NameSearch); name != "" {
		query.Set("name_search", name)
	}
	if metadata := strings.TrimSpace(req.MetadataSearch); metadata != "" {
		query.Set("metadata_search", metadata)
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/documents"), query, nil)
}

// UpdateDocumentRequest holds the sparse-patch fields for a document.
// Only explicitly provided fields are sent; empty strings are treated as
// absent.
type UpdateDocumentRequest struct {
	Name     string
	TagIDs   string
	Metadata any
}

// Update patches a document. At least one field must be provided.
func (s *DocumentService) Update(ctx context.Context, org, documentID string, req UpdateDocumentRequest) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if ids := splitIDList(req.TagIDs); len(ids) > 0 {
		body["tag_ids"] = ids
	}
	metadata, err := parseJSONObject("metadata", req.Metadata)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, orgPath(org, "/documents/"+url.PathEscape(documentID)), nil, body)
}

// Delete removes a document and synthesizes a confirmation payload, since
// the remote returns no body.
func (s *DocumentService) Delete(ctx context.Context, org, documentID string) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, orgPath(org, "/documents/"+url.PathEscape(documentID)), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("document", documentID), nil
}
