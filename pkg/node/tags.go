package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// TagsNode exposes tag operations.
type TagsNode struct{}

func (TagsNode) Name() string { return "tags" }

func (TagsNode) Operations() []string {
	return []string{"list", "create", "get", "update", "delete"}
}

func (TagsNode) BatchLevel(operation string) bool { return operation == "list" }

func (TagsNode) RequiresOrganization() bool { return true }

type listTagsParams struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

type createTagParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type tagIDParams struct {
	TagID string `json:"tagId"`
}

type updateTagParams struct {
	TagID       string `json:"tagId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (n TagsNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "list":
		var p listTagsParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Tags.List(ctx, env.OrganizationID, parseline.ListTagsRequest{
			Limit: p.Limit,
			Skip:  p.Skip,
		})

	case "create":
		var p createTagParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Tags.Create(ctx, env.OrganizationID, parseline.CreateTagRequest{
			Name:        p.Name,
			Description: p.Description,
		})

	case "get":
		var p tagIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Tags.Get(ctx, env.OrganizationID, p.TagID)

	case "update":
		var p updateTagParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Tags.Update(ctx, env.OrganizationID, p.TagID, parseline.UpdateTagRequest{
			Name:        p.Name,
			Description: p.Description,
		})

	case "delete":
		var p tagIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Tags.Delete(ctx, env.OrganizationID, p.TagID)
	}

	return nil, unsupported(n.Name(), operation)
}
