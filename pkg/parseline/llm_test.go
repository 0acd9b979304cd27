package parseline

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMService_Run(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/llm/run/doc-1", r.URL.Path)
		assert.Equal(t, "rev-7", r.URL.Query().Get("prompt_revid"))
		assert.Equal(t, "true", r.URL.Query().Get("force"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "running"})
	})

	payload, err := client.LLM.Run(context.Background(), "org-1", "doc-1", RunRequest{
		PromptRevID: "rev-7",
		Force:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "running", payload["status"])
}

func TestLLMService_Run_OmitsOptionalQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("prompt_revid"))
		assert.False(t, r.URL.Query().Has("force"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "running"})
	})

	_, err := client.LLM.Run(context.Background(), "org-1", "doc-1", RunRequest{})
	require.NoError(t, err)
}

func TestLLMService_GetResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/llm/result/doc-1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("fallback"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"total": 12.5}})
	})

	payload, err := client.LLM.GetResult(context.Background(), "org-1", "doc-1", GetResultRequest{
		Fallback: true,
	})
	require.NoError(t, err)
	assert.Contains(t, payload, "result")
}

func TestLLMService_UpdateResult_RequiresRevision(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.LLM.UpdateResult(context.Background(), "org-1", "doc-1", UpdateResultRequest{
		Result: `{"total": 10}`,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestLLMService_UpdateResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "rev-7", r.URL.Query().Get("prompt_revid"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"total": float64(10)}, body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	})

	_, err := client.LLM.UpdateResult(context.Background(), "org-1", "doc-1", UpdateResultRequest{
		PromptRevID: "rev-7",
		Result:      `{"total": 10}`,
	})
	require.NoError(t, err)
}

func TestLLMService_DeleteResult_RequiresRevision(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.LLM.DeleteResult(context.Background(), "org-1", "doc-1", "  ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestLLMService_DeleteResult_SynthesizesConfirmation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/llm/result/doc-1", r.URL.Path)
		assert.Equal(t, "rev-7", r.URL.Query().Get("prompt_revid"))
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := client.LLM.DeleteResult(context.Background(), "org-1", "doc-1", "rev-7")
	require.NoError(t, err)
	assert.Equal(t, Payload{"success": true, "documentId": "doc-1"}, payload)
}
