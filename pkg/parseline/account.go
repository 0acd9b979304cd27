package parseline

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AccountService covers token introspection plus user and organization
// administration. These endpoints live outside the per-organization scope.
type AccountService struct {
	client *Client
}

// ResolveOrganization exchanges the client's bearer token for the
// organization ID it is scoped to. A token that resolves to no
// organization is a ConfigurationError.
func (s *AccountService) ResolveOrganization(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("token", s.client.apiToken)

	payload, err := s.client.do(ctx, http.MethodGet, "/v0/account/token/organization", query, nil)
	if err != nil {
		return "", err
	}

	orgID, _ := payload["organization_id"].(string)
	if orgID == "" {
		return "", &ConfigurationError{
			Msg: "the supplied API token is not scoped to an organization",
		}
	}

	s.client.logger.Debug("resolved organization from token", "organization_id", orgID)

	return orgID, nil
}

// ListUsersRequest holds pagination for user listings.
type ListUsersRequest struct {
	Limit int
	Skip  int
}

// ListUsers returns the users visible to the account.
func (s *AccountService) ListUsers(ctx context.Context, req ListUsersRequest) (Payload, error) {
	return s.client.do(ctx, http.MethodGet, "/v0/account/users", listQuery(req.Limit, req.Skip), nil)
}

// CreateUserRequest holds inputs for user creation.
type CreateUserRequest struct {
	Email string
	Name  string
	Role  string
}

func (r CreateUserRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
	)
}

// CreateUser invites a user to the account.
func (s *AccountService) CreateUser(ctx context.Context, req CreateUserRequest) (Payload, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := req.validate(); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	body := map[string]any{"email": req.Email}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if role := strings.TrimSpace(req.Role); role != "" {
		body["role"] = role
	}

	return s.client.do(ctx, http.MethodPost, "/v0/account/users", nil, body)
}

// UpdateUserRequest holds the sparse-patch fields for a user. Only
// explicitly provided fields are sent.
type UpdateUserRequest struct {
	Name string
	Role string
}

// UpdateUser patches a user. At least one field must be provided.
func (s *AccountService) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (Payload, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if role := strings.TrimSpace(req.Role); role != "" {
		body["role"] = role
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, "/v0/account/users/"+url.PathEscape(userID), nil, body)
}

// DeleteUser removes a user and synthesizes a confirmation payload, since
// the remote returns no body.
func (s *AccountService) DeleteUser(ctx context.Context, userID string) (Payload, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &ValidationError{Field: "userId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, "/v0/account/users/"+url.PathEscape(userID), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("user", userID), nil
}

// ListOrganizationsRequest holds pagination for organization listings.
type ListOrganizationsRequest struct {
	Limit int
	Skip  int
}

// ListOrganizations returns the organizations visible to the account.
func (s *AccountService) ListOrganizations(ctx context.Context, req ListOrganizationsRequest) (Payload, error) {
	return s.client.do(ctx, http.MethodGet, "/v0/account/organizations", listQuery(req.Limit, req.Skip), nil)
}

// CreateOrganizationRequest holds inputs for organization creation.
type CreateOrganizationRequest struct {
	Name string
}

// CreateOrganization creates a new organization.
func (s *AccountService) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (Payload, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Msg: "is required"}
	}

	return s.client.do(ctx, http.MethodPost, "/v0/account/organizations", nil, map[string]any{"name": name})
}

// UpdateOrganizationRequest holds the sparse-patch fields for an
// organization.
type UpdateOrganizationRequest struct {
	Name string
}

// UpdateOrganization patches an organization. At least one field must be
// provided.
func (s *AccountService) UpdateOrganization(ctx context.Context, orgID string, req UpdateOrganizationRequest) (Payload, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, &ValidationError{Field: "organizationId", Msg: "is required"}
	}

	body := map[string]any{}
	if name := strings.TrimSpace(req.Name); name != "" {
		body["name"] = name
	}
	if len(body) == 0 {
		return nil, &ValidationError{Msg: "at least one field must be provided for update"}
	}

	return s.client.do(ctx, http.MethodPut, "/v0/account/organizations/"+url.PathEscape(orgID), nil, body)
}

// DeleteOrganization removes an organization and synthesizes a
// confirmation payload.
func (s *AccountService) DeleteOrganization(ctx context.Context, orgID string) (Payload, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, &ValidationError{Field: "organizationId", Msg: "is required"}
	}

	if _, err := s.client.do(ctx, http.MethodDelete, "/v0/account/organizations/"+url.PathEscape(orgID), nil, nil); err != nil {
		return nil, err
	}

	return deleteConfirmation("organization", orgID), nil
}
