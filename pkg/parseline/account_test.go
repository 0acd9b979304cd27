package parseline

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_ResolveOrganization(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/account/token/organization", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"organization_id": "org-42"})
	})

	orgID, err := client.Account.ResolveOrganization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "org-42", orgID)
}

func TestAccountService_ResolveOrganization_NotOrgScoped(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.Account.ResolveOrganization(context.Background())
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestAccountService_CreateUser_OmitsEmptyOptionals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v0/account/users", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"email": "user@example.com"}, body)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "usr-1"})
	})

	_, err := client.Account.CreateUser(context.Background(), CreateUserRequest{
		Email: " user@example.com ",
	})
	require.NoError(t, err)
}

func TestAccountService_CreateUser_RequiresEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.Account.CreateUser(context.Background(), CreateUserRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAccountService_UpdateUser_RequiresAField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued")
	})

	_, err := client.Account.UpdateUser(context.Background(), "usr-1", UpdateUserRequest{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAccountService_DeleteUser_SynthesizesConfirmation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/v0/account/users/usr-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := client.Account.DeleteUser(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, Payload{"success": true, "userId": "usr-1"}, payload)
}

func TestAccountService_Organizations(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "POST":
			assert.Equal(t, "/v0/account/organizations", r.URL.Path)
		case r.Method == "PUT":
			assert.Equal(t, "/v0/account/organizations/org-1", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"name": "renamed"}, body)
		case r.Method == "DELETE":
			assert.Equal(t, "/v0/account/organizations/org-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "org-1"})
	})

	ctx := context.Background()

	_, err := client.Account.CreateOrganization(ctx, CreateOrganizationRequest{Name: "acme"})
	require.NoError(t, err)

	_, err = client.Account.UpdateOrganization(ctx, "org-1", UpdateOrganizationRequest{Name: "renamed"})
	require.NoError(t, err)

	payload, err := client.Account.DeleteOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, Payload{"success": true, "organizationId": "org-1"}, payload)
}
