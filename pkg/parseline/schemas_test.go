package parseline

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaService_Create(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/schemas", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "invoice", body["name"])
		assert.Equal(t, map[string]any{"type": "object"}, body["json_schema"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "sch-1"})
	})

	_, err := client.Schemas.Create(context.Background(), "org-1", CreateSchemaRequest{
		Name:       "invoice",
		JSONSchema: `{"type":"object"}`,
	})
	require.NoError(t, err)
}

func TestSchemaService_Create_RequiresSchema(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.Schemas.Create(context.Background(), "org-1", CreateSchemaRequest{
		Name: "invoice",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSchemaService_Update_AcceptsRevisionOrID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/schemas/rev-3", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"name": "renamed"}, body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "sch-1"})
	})

	_, err := client.Schemas.Update(context.Background(), "org-1", "rev-3", UpdateSchemaRequest{
		Name: "renamed",
	})
	require.NoError(t, err)
}

func TestSchemaService_Validate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/schemas/rev-3/validate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"data": map[string]any{"total": float64(10)}}, body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"valid": true})
	})

	payload, err := client.Schemas.Validate(context.Background(), "org-1", "rev-3", ValidateRequest{
		Data: map[string]any{"total": float64(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, true, payload["valid"])
}

func TestSchemaService_Validate_RequiresRevision(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.Schemas.Validate(context.Background(), "org-1", "", ValidateRequest{
		Data: `{"total": 10}`,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSchemaService_Versions(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/orgs/org-1/schemas/sch-1/versions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{map[string]any{"revid": "rev-1"}}})
	})

	payload, err := client.Schemas.Versions(context.Background(), "org-1", "sch-1")
	require.NoError(t, err)
	assert.Contains(t, payload, "data")
}

func TestSchemaService_Delete_SynthesizesConfirmation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := client.Schemas.Delete(context.Background(), "org-1", "sch-1")
	require.NoError(t, err)
	assert.Equal(t, Payload{"success": true, "schemaId": "sch-1"}, payload)
}
