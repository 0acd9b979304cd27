package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// KnowledgeBaseNode exposes knowledge base operations, including vector
// search, chat completion and reconciliation.
type KnowledgeBaseNode struct{}

func (KnowledgeBaseNode) Name() string { return "knowledgeBase" }

func (KnowledgeBaseNode) Operations() []string {
	return []string{
		"list", "create", "get", "update", "delete",
		"listDocuments", "getDocumentChunks", "search", "chat",
		"reconcile", "reconcileAll",
	}
}

func (KnowledgeBaseNode) BatchLevel(operation string) bool {
	switch operation {
	case "list", "listDocuments", "search", "chat", "reconcile", "reconcileAll":
		return true
	}
	return false
}

func (KnowledgeBaseNode) RequiresOrganization() bool { return true }

type listKBParams struct {
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

type createKBParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TagIDs      string `json:"tagIds"`
}

type kbIDParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
}

type updateKBParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	TagIDs          string `json:"tagIds"`
}

type listKBDocumentsParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	Limit           int    `json:"limit"`
	Skip            int    `json:"skip"`
}

type kbDocumentParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	DocumentID      string `json:"documentId"`
}

type searchKBParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	Query           string `json:"query"`
	TopK            int    `json:"topK"`
}

type chatKBParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	Messages        any    `json:"messages"`
	Model           string `json:"model"`
	Stream          bool   `json:"stream"`
}

type reconcileKBParams struct {
	KnowledgeBaseID string `json:"knowledgeBaseId"`
	DryRun          bool   `json:"dryRun"`
}

func (n KnowledgeBaseNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "list":
		var p listKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.List(ctx, env.OrganizationID, parseline.ListKnowledgeBasesRequest{
			Limit: p.Limit,
			Skip:  p.Skip,
		})

	case "create":
		var p createKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Create(ctx, env.OrganizationID, parseline.CreateKnowledgeBaseRequest{
			Name:        p.Name,
			Description: p.Description,
			TagIDs:      p.TagIDs,
		})

	case "get":
		var p kbIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Get(ctx, env.OrganizationID, p.KnowledgeBaseID)

	case "update":
		var p updateKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Update(ctx, env.OrganizationID, p.KnowledgeBaseID, parseline.UpdateKnowledgeBaseRequest{
			Name:        p.Name,
			Description: p.Description,
			TagIDs:      p.TagIDs,
		})

	case "delete":
		var p kbIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Delete(ctx, env.OrganizationID, p.KnowledgeBaseID)

	case "listDocuments":
		var p listKBDocumentsParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.ListDocuments(ctx, env.OrganizationID, p.KnowledgeBaseID, parseline.ListKBDocumentsRequest{
			Limit: p.Limit,
			Skip:  p.Skip,
		})

	case "getDocumentChunks":
		var p kbDocumentParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.GetDocumentChunks(ctx, env.OrganizationID, p.KnowledgeBaseID, p.DocumentID)

	case "search":
		var p searchKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Search(ctx, env.OrganizationID, p.KnowledgeBaseID, parseline.SearchRequest{
			Query: p.Query,
			TopK:  p.TopK,
		})

	case "chat":
		var p chatKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Chat(ctx, env.OrganizationID, p.KnowledgeBaseID, parseline.ChatRequest{
			Messages: p.Messages,
			Model:    p.Model,
			Stream:   p.Stream,
		})

	case "reconcile":
		var p reconcileKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.Reconcile(ctx, env.OrganizationID, p.KnowledgeBaseID, p.DryRun)

	case "reconcileAll":
		var p reconcileKBParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.KnowledgeBases.ReconcileAll(ctx, env.OrganizationID, p.DryRun)
	}

	return nil, unsupported(n.Name(), operation)
}
