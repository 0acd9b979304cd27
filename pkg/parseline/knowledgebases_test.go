package parseline

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBaseService_Create(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "contracts", body["name"])
		assert.Equal(t, []any{"a", "b"}, body["tag_ids"])
		assert.NotContains(t, body, "description")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "kb-1"})
	})

	_, err := client.KnowledgeBases.Create(context.Background(), "org-1", CreateKnowledgeBaseRequest{
		Name:   "contracts",
		TagIDs: "a, b",
	})
	require.NoError(t, err)
}

func TestKnowledgeBaseService_ListDocuments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/kb-1/documents", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.KnowledgeBases.ListDocuments(context.Background(), "org-1", "kb-1", ListKBDocumentsRequest{
		Limit: 10,
	})
	require.NoError(t, err)
}

func TestKnowledgeBaseService_GetDocumentChunks(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/kb-1/documents/doc-1/chunks", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"chunks": []any{}})
	})

	payload, err := client.KnowledgeBases.GetDocumentChunks(context.Background(), "org-1", "kb-1", "doc-1")
	require.NoError(t, err)
	assert.Contains(t, payload, "chunks")
}

func TestKnowledgeBaseService_Search(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/kb-1/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "payment terms", body["query"])
		assert.Equal(t, float64(5), body["top_k"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"matches": []any{}})
	})

	_, err := client.KnowledgeBases.Search(context.Background(), "org-1", "kb-1", SearchRequest{
		Query: "payment terms",
		TopK:  5,
	})
	require.NoError(t, err)
}

func TestKnowledgeBaseService_Search_RequiresQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.KnowledgeBases.Search(context.Background(), "org-1", "kb-1", SearchRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestKnowledgeBaseService_Chat_ForwardsStreamFlag(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/kb-1/chat", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["stream"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		assert.Len(t, messages, 1)

		// The stream flag is forwarded but the response is still one
		// buffered JSON payload.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": "42 days"}}},
		})
	})

	payload, err := client.KnowledgeBases.Chat(context.Background(), "org-1", "kb-1", ChatRequest{
		Messages: `[{"role":"user","content":"what are the payment terms?"}]`,
		Stream:   true,
	})
	require.NoError(t, err)
	assert.Contains(t, payload, "choices")
}

func TestKnowledgeBaseService_Chat_MalformedMessages(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.KnowledgeBases.Chat(context.Background(), "org-1", "kb-1", ChatRequest{
		Messages: `[{bad`,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestKnowledgeBaseService_Reconcile_DryRun(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/kb-1/reconcile", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("dry_run"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"planned": 3})
	})

	_, err := client.KnowledgeBases.Reconcile(context.Background(), "org-1", "kb-1", true)
	require.NoError(t, err)
}

func TestKnowledgeBaseService_ReconcileAll(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/knowledge-bases/reconcile-all", r.URL.Path)
		assert.False(t, r.URL.Query().Has("dry_run"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"reconciled": 2})
	})

	_, err := client.KnowledgeBases.ReconcileAll(context.Background(), "org-1", false)
	require.NoError(t, err)
}

func TestKnowledgeBaseService_Delete_SynthesizesConfirmation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := client.KnowledgeBases.Delete(context.Background(), "org-1", "kb-1")
	require.NoError(t, err)
	assert.Equal(t, Payload{"success": true, "knowledgeBaseId": "kb-1"}, payload)
}
