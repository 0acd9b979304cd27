package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// SchemasNode exposes extraction schema operations.
type SchemasNode struct{}

func (SchemasNode) Name() string { return "schemas" }

func (SchemasNode) Operations() []string {
	return []string{"list", "create", "get", "update", "delete", "validate", "versions"}
}

func (SchemasNode) BatchLevel(operation string) bool { return operation == "list" }

func (SchemasNode) RequiresOrganization() bool { return true }

type listSchemasParams struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

type createSchemaParams struct {
	Name       string `json:"name"`
	JSONSchema any    `json:"jsonSchema"`
}

type schemaIDParams struct {
	SchemaID string `json:"schemaId"`
}

type updateSchemaParams struct {
	SchemaID   string `json:"schemaId"`
	Name       string `json:"name"`
	JSONSchema any    `json:"jsonSchema"`
}

type validateSchemaParams struct {
	RevisionID string `json:"revisionId"`
	Data       any    `json:"data"`
}

func (n SchemasNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "list":
		var p listSchemasParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.List(ctx, env.OrganizationID, parseline.ListSchemasRequest{
			Limit: p.Limit,
			Skip:  p.Skip,
		})

	case "create":
		var p createSchemaParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Create(ctx, env.OrganizationID, parseline.CreateSchemaRequest{
			Name:       p.Name,
			JSONSchema: p.JSONSchema,
		})

	case "get":
		var p schemaIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Get(ctx, env.OrganizationID, p.SchemaID)

	case "update":
		var p updateSchemaParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Update(ctx, env.OrganizationID, p.SchemaID, parseline.UpdateSchemaRequest{
			Name:       p.Name,
			JSONSchema: p.JSONSchema,
		})

	case "delete":
		var p schemaIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Delete(ctx, env.OrganizationID, p.SchemaID)

	case "validate":
		var p validateSchemaParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Validate(ctx, env.OrganizationID, p.RevisionID, parseline.ValidateRequest{
			Data: p.Data,
		})

	case "versions":
		var p schemaIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Schemas.Versions(ctx, env.OrganizationID, p.SchemaID)
	}

	return nil, unsupported(n.Name(), operation)
}
