package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// AccountNode exposes user and organization administration. These
// operations run outside the per-organization scope, so no organization
// context is resolved for them.
type AccountNode struct{}

func (AccountNode) Name() string { return "account" }

func (AccountNode) Operations() []string {
	return []string{
		"listUsers", "createUser", "updateUser", "deleteUser",
		"listOrganizations", "createOrganization", "updateOrganization", "deleteOrganization",
	}
}

func (AccountNode) BatchLevel(operation string) bool {
	return operation == "listUsers" || operation == "listOrganizations"
}

func (AccountNode) RequiresOrganization() bool { return false }

type listParams struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

type createUserParams struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type updateUserParams struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type userIDParams struct {
	UserID string `json:"userId"`
}

type organizationParams struct {
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
}

func (n AccountNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "listUsers":
		var p listParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.ListUsers(ctx, parseline.ListUsersRequest{Limit: p.Limit, Skip: p.Skip})

	case "createUser":
		var p createUserParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.CreateUser(ctx, parseline.CreateUserRequest{
			Email: p.Email,
			Name:  p.Name,
			Role:  p.Role,
		})

	case "updateUser":
		var p updateUserParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.UpdateUser(ctx, p.UserID, parseline.UpdateUserRequest{
			Name: p.Name,
			Role: p.Role,
		})

	case "deleteUser":
		var p userIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.DeleteUser(ctx, p.UserID)

	case "listOrganizations":
		var p listParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.ListOrganizations(ctx, parseline.ListOrganizationsRequest{Limit: p.Limit, Skip: p.Skip})

	case "createOrganization":
		var p organizationParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.CreateOrganization(ctx, parseline.CreateOrganizationRequest{Name: p.Name})

	case "updateOrganization":
		var p organizationParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.UpdateOrganization(ctx, p.OrganizationID, parseline.UpdateOrganizationRequest{Name: p.Name})

	case "deleteOrganization":
		var p organizationParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Account.DeleteOrganization(ctx, p.OrganizationID)
	}

	return nil, unsupported(n.Name(), operation)
}
