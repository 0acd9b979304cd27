package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// LLMNode exposes extraction run and result operations.
type LLMNode struct{}

func (LLMNode) Name() string { return "llm" }

func (LLMNode) Operations() []string {
	return []string{"run", "getResult", "updateResult", "deleteResult"}
}

func (LLMNode) BatchLevel(string) bool { return false }

func (LLMNode) RequiresOrganization() bool { return true }

type runParams struct {
	DocumentID  string `json:"documentId"`
	PromptRevID string `json:"promptRevId"`
	Force       bool   `json:"force"`
}

type getResultParams struct {
	DocumentID  string `json:"documentId"`
	PromptRevID string `json:"promptRevId"`
	Fallback    bool   `json:"fallback"`
}

type updateResultParams struct {
	DocumentID  string `json:"documentId"`
	PromptRevID string `json:"promptRevId"`
	Result      any    `json:"result"`
}

type deleteResultParams struct {
	DocumentID  string `json:"documentId"`
	PromptRevID string `json:"promptRevId"`
}

func (n LLMNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "run":
		var p runParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.LLM.Run(ctx, env.OrganizationID, p.DocumentID, parseline.RunRequest{
			PromptRevID: p.PromptRevID,
			Force:       p.Force,
		})

	case "getResult":
		var p getResultParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.LLM.GetResult(ctx, env.OrganizationID, p.DocumentID, parseline.GetResultRequest{
			PromptRevID: p.PromptRevID,
			Fallback:    p.Fallback,
		})

	case "updateResult":
		var p updateResultParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.LLM.UpdateResult(ctx, env.OrganizationID, p.DocumentID, parseline.UpdateResultRequest{
			PromptRevID: p.PromptRevID,
			Result:      p.Result,
		})

	case "deleteResult":
		var p deleteResultParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.LLM.DeleteResult(ctx, env.OrganizationID, p.DocumentID, p.PromptRevID)
	}

	return nil, unsupported(n.Name(), operation)
}
