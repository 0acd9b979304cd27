// Package parseline implements a typed client for the Parseline
// document-processing API.
//
// Every operation performs exactly one HTTP request: input normalization,
// request construction, the call itself, then response normalization. The
// client holds no state beyond its credential and applies no retry policy
// of its own.
package parseline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
)

const (
	// DefaultBaseURL is the public Parseline API endpoint.
	DefaultBaseURL = "https://api.parseline.com"

	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Parseline client.
type Config struct {
	APIToken   string        // Bearer token (required)
	BaseURL    string        // Base URL (default: DefaultBaseURL)
	Timeout    time.Duration // HTTP timeout (default: 60s)
	Logger     hclog.Logger  // Logger (optional)
	HTTPClient *http.Client  // HTTP client override (optional)
}

// Client is the Parseline API client. Resource areas are exposed as
// services, one method per remote operation.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger

	Account        *AccountService
	Documents      *DocumentService
	LLM            *LLMService
	Tags           *TagService
	Schemas        *SchemaService
	KnowledgeBases *KnowledgeBaseService
}

// NewClient creates a new Parseline client.
func NewClient(config Config) (*Client, error) {
	if config.APIToken == "" {
		return nil, &ConfigurationError{Msg: "API token is required"}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	if config.Logger == nil {
		config.Logger = hclog.NewNullLogger()
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	c := &Client{
		apiToken:   config.APIToken,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     config.Logger.Named("parseline-client"),
	}

	c.Account = &AccountService{client: c}
	c.Documents = &DocumentService{client: c}
	c.LLM = &LLMService{client: c}
	c.Tags = &TagService{client: c}
	c.Schemas = &SchemaService{client: c}
	c.KnowledgeBases = &KnowledgeBaseService{client: c}

	return c, nil
}

// Payload is a decoded JSON object response. Responses that are not JSON
// objects (bare arrays) are wrapped under a "data" key so every operation
// yields an object.
type Payload map[string]any

// do executes one API request and normalizes the response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (Payload, error) {
	var reqBody io.Reader
	if body != nil {
		reqJSON, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(reqJSON)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	c.logger.Debug("sending request to Parseline",
		"method", method,
		"path", path,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var payload Payload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		var v any
		if err2 := json.Unmarshal(respBody, &v); err2 != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err2)
		}
		payload = Payload{"data": v}
	}

	return payload, nil
}

// remoteErrorMessage extracts the error message from a remote error body.
// The API reports errors as {"detail": "..."}; anything else is returned
// raw.
func remoteErrorMessage(body []byte) string {
	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return string(body)
}

// deleteConfirmation synthesizes the result for delete operations, since
// the remote returns no body on success.
func deleteConfirmation(entity, id string) Payload {
	payload := Payload{"success": true}
	payload[strcase.ToLowerCamel(entity+"_id")] = id
	return payload
}

// splitIDList splits a comma-separated ID list into trimmed non-empty
// tokens. An empty or all-whitespace input yields nil so callers can omit
// the field entirely.
func splitIDList(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseJSONObject accepts a free-form JSON field either as a pre-parsed
// object or as literal JSON text. Empty text falls back to an empty
// object; malformed text is a ValidationError.
func parseJSONObject(field string, v any) (map[string]any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return val, nil
	case string:
		if strings.TrimSpace(val) == "" {
			return map[string]any{}, nil
		}
		var parsed map[string]any
		if err := json.Unmarshal([]byte(val), &parsed); err != nil {
			return nil, &ValidationError{Field: field, Msg: "must be valid JSON"}
		}
		return parsed, nil
	default:
		return nil, &ValidationError{Field: field, Msg: "must be a JSON object or JSON text"}
	}
}

// parseJSONValue is like parseJSONObject but permits any JSON value, e.g.
// message arrays for chat operations.
func parseJSONValue(field string, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, &ValidationError{Field: field, Msg: "must be valid JSON"}
	}
	return parsed, nil
}

// orgPath prefixes a path with the organization scope.
func orgPath(org, suffix string) string {
	return fmt.Sprintf("/v0/orgs/%s%s", url.PathEscape(org), suffix)
}

// listQuery builds the shared pagination query parameters.
func listQuery(limit, skip int) url.Values {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
	if skip > 0 {
		query.Set("skip", fmt.Sprintf("%d", skip))
	}
	return query
}
