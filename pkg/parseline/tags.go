package parseline

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// TagService covers tag management within an organization.
type TagService struct {
	client *Client
}

// ListTagsRequest holds pagination for tag listings.
type ListTagsRequest struct {
	Limit int
	Skip  int
}

// List returns the organization's tags.
func (s *TagService) List(ctx context.Context, org string, req ListTagsRequest) (Payload, error) {
	return s.client.do(ctx, http.MethodGet, orgPath(org, "/tags"), listQuery(req.Limit, req.Skip), nil)
}

// CreateTagRequest holds inputs for tag creation.
type CreateTagRequest struct {
	Name        string
	Description string
}

// Create creates a tag.
func (s *TagService) Create(ctx context.Context, org string, req CreateTagRequest) (Payload, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Msg: "is required"}
	}

	body := map[string]any{"name": name}
	if description := strings.TrimSpace(req.Description); description != "" {
		body["description"] = description
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/tags"), nil, body)
}

// Get fetches a tag by ID.
func (s *TagService) Get(ctx context.Context, org, tagID string) (Payload, error) {
	tagID = strings.TrimSpace(tagID)
	if tagID == "" {
		return nil, &ValidationError{Field: "tagId", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/tags/"+url.PathEscape(tagID)), nil, nil)
}

// UpdateTagRequest holds the sparse-patch fields for a tag.
type UpdateTagRequest struct {
	Name        string
	Description string
}

// Update patches a tag. At least one field must be provided.
func (s *TagService) Update(ctx context.Context, org, tagID string, req UpdateTagRequest) (Payload, error) {
	tagID = strings.TrimSpace(tagID)
	if tagID == "" {
		return nil, &ValidationError{Field: "tagId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		body["description"] = description
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, orgPath(org, "/tags/"+url.PathEscape(tagID)), nil, body)
}

// Delete removes a tag and synthesizes a confirmation payload.
func (s *TagService) Delete(ctx context.Context, org, tagID string) (Payload, error) {
	tagID = strings.TrimSpace(tagID)
	if tagID == "" {
		return nil, &ValidationError{Field: "tagId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, orgPath(org, "/tags/"+url.PathEscape(tagID)), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("tag", tagID), nil
}
