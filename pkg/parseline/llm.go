package parseline

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// LLMService covers extraction runs and their results. Results are
// versioned by prompt revision, so update and delete require a revision
// ID.
type LLMService struct {
	client *Client
}

// RunRequest holds inputs for starting an extraction run on a document.
type RunRequest struct {
	PromptRevID string
	Force       bool
}

// Run starts an extraction run for a document.
func (s *LLMService) Run(ctx context.Context, org, documentID string, req RunRequest) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	query := url.Values{}
	if revID := strings.TrimSpace(req.PromptRevID); revID != "" {
		query.Set("prompt_revid", revID)
	}
	if req.Force {
		query.Set("force", "true")
	}

	return s.client.do(ctx, http.MethodPost, orgPath(org, "/llm/run/"+url.PathEscape(documentID)), query, nil)
}

// GetResultRequest holds optional flags for result retrieval.
type GetResultRequest struct {
	PromptRevID string
	Fallback    bool
}

// GetResult fetches the extraction result for a document.
func (s *LLMService) GetResult(ctx context.Context, org, documentID string, req GetResultRequest) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}

	query := url.Values{}
	if revID := strings.TrimSpace(req.PromptRevID); revID != "" {
		query.Set("prompt_revid", revID)
	}
	if req.Fallback {
		query.Set("fallback", "true")
	}

	return s.client.do(ctx, http.MethodGet, orgPath(org, "/llm/result/"+url.PathEscape(documentID)), query, nil)
}

// UpdateResultRequest holds the replacement result payload for a specific
// prompt revision. Result accepts a pre-parsed object or literal JSON
// text.
type UpdateResultRequest struct {
	PromptRevID string
	Result      any
}

// UpdateResult replaces the stored result for a document at a given
// prompt revision. The revision ID is required before any network call.
func (s *LLMService) UpdateResult(ctx context.Context, org, documentID string, req UpdateResultRequest) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}
	revID := strings.TrimSpace(req.PromptRevID)
	if revID == "" {
		return nil, &ValidationError{Field: "promptRevId", Msg: "is required"}
	}

	result, err := parseJSONObject("result", req.Result)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, &ValidationError{Field: "result", Msg: "is required"}
	}

	query := url.Values{}
	query.Set("prompt_revid", revID)

	return s.client.do(ctx, http.MethodPut, orgPath(org, "/llm/result/"+url.PathEscape(documentID)), query, result)
}

// DeleteResult removes the stored result for a document at a given prompt
// revision and synthesizes a confirmation payload.
func (s *LLMService) DeleteResult(ctx context.Context, org, documentID, promptRevID string) (Payload, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, &ValidationError{Field: "documentId", Msg: "is required"}
	}
	promptRevID = strings.TrimSpace(promptRevID)
	if promptRevID == "" {
		return nil, &ValidationError{Field: "promptRevId", Msg: "is required"}
	}

	query := url.Values{}
	query.Set("prompt_revid", promptRevID)

	if _, err := s.client.do(ctx, http.MethodDelete, orgPath(org, "/llm/result/"+url.PathEscape(documentID)), query, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("document", documentID), nil
}
