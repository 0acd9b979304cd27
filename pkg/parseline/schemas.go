package parseline

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// SchemaService covers extraction schema management. Schemas are
// versioned; get, update and delete accept either a schema ID or a
// revision ID, while validate requires a revision ID.
type SchemaService struct {
	client *Client
}

// ListSchemasRequest holds pagination for schema listings.
type ListSchemasRequest struct {
	Limit int
	Skip  int
}

// List returns the organization's schemas.
func (s *SchemaService) List(ctx context.Context, org string, req ListSchemasRequest) (Payload, error) {
	return s.client.do(ctx, http.MethodGet, orgPath(org, "/schemas"), listQuery(req.Limit, req.Skip), nil)
}

// CreateSchemaRequest holds inputs for schema creation. JSONSchema accepts
// a pre-parsed object or literal JSON text.
type CreateSchemaRequest struct {
	Name       string
	JSONSchema any
}

// Create creates a schema.
func (s *SchemaService) Create(ctx context.Context, org string, req CreateSchemaRequest) (Payload, error) {
	jsonSchema, err := parseJSONObject("jsonSchema", req.JSONSchema)
	if err != nil {
		return nil, err
	}
	if len(jsonSchema) == 0 {
		return nil, &ValidationError{Field: "jsonSchema", Msg: "is required"}
	}

	body := map[string]any{"json_schema": jsonSchema}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/schemas"), nil, body)
}

// Get fetches a schema by ID or revision ID.
func (s *SchemaService) Get(ctx context.Context, org, schemaID string) (Payload, error) {
	schemaID = strings.TrimSpace(schemaID)
	if schemaID == "" {
		return nil, &ValidationError{Field: "schemaId", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/schemas/"+url.PathEscape(schemaID)), nil, nil)
}

// UpdateSchemaRequest holds the sparse-patch fields for a schema.
type UpdateSchemaRequest struct {
	Name       string
	JSONSchema any
}

// Update patches a schema. At least one field must be provided.
func (s *SchemaService) Update(ctx context.Context, org, schemaID string, req UpdateSchemaRequest) (Payload, error) {
	schemaID = strings.TrimSpace(schemaID)
	if schemaID == "" {
		return nil, &ValidationError{Field: "schemaId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	jsonSchema, err := parseJSONObject("jsonSchema", req.JSONSchema)
	if err != nil {
		return nil, err
	}
	if len(jsonSchema) > 0 {
		body["json_schema"] = jsonSchema
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, orgPath(org, "/schemas/"+url.PathEscape(schemaID)), nil, body)
}

// Delete removes a schema and synthesizes a confirmation payload.
func (s *SchemaService) Delete(ctx context.Context, org, schemaID string) (Payload, error) {
	schemaID = strings.TrimSpace(schemaID)
	if schemaID == "" {
		return nil, &ValidationError{Field: "schemaId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, orgPath(org, "/schemas/"+url.PathEscape(schemaID)), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("schema", schemaID), nil
}

// ValidateRequest holds the data to validate against a schema revision.
// Data accepts a pre-parsed object or literal JSON text.
type ValidateRequest struct {
	Data any
}

// Validate checks data against a specific schema revision. The revision
// ID is required before any network call.
func (s *SchemaService) Validate(ctx context.Context, org, revisionID string, req ValidateRequest) (Payload, error) {
	revisionID = strings.TrimSpace(revisionID)
	if revisionID == "" {
		return nil, &ValidationError{Field: "revisionId", Msg: "is required"}
	}

	data, err := parseJSONObject("data", req.Data)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &ValidationError{Field: "data", Msg: "is required"}
	}

	body := map[string]any{"data": data}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/schemas/"+url.PathEscape(revisionID)+"/validate"), nil, body)
}

// Versions lists all revisions of a schema.
func (s *SchemaService) Versions(ctx context.Context, org, schemaID string) (Payload, error) {
	schemaID = strings.TrimSpace(schemaID)
	if schemaID == "" {
		return nil, &ValidationError{Field: "schemaId", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/schemas/"+url.PathEscape(schemaID)+"/versions"), nil, nil)
}
