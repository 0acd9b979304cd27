package node

import (
	"context"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// DocumentsNode exposes document operations.
type DocumentsNode struct{}

func (DocumentsNode) Name() string { return "documents" }

func (DocumentsNode) Operations() []string {
	return []string{"upload", "get", "list", "update", "delete"}
}

func (DocumentsNode) BatchLevel(operation string) bool { return operation == "list" }

func (DocumentsNode) RequiresOrganization() bool { return true }

type uploadDocumentParams struct {
	Name           string `json:"name"`
	BinaryProperty string `json:"binaryProperty"`
	TagIDs         string `json:"tagIds"`
	Metadata       any    `json:"metadata"`
}

type getDocumentParams struct {
	DocumentID string `json:"documentId"`
	FileType   string `json:"fileType"`
}

type listDocumentsParams struct {
	Limit          int    `json:"limit"`
	Skip           int    `json:"skip"`
	TagIDs         string `json:"tagIds"`
	NameSearch     string `json:"nameSearch"`
	MetadataSearch string `json:"metadataSearch"`
}

type updateDocumentParams struct {
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	TagIDs     string `json:"tagIds"`
	Metadata   any    `json:"metadata"`
}

type deleteDocumentParams struct {
	DocumentID string `json:"documentId"`
}

func (n DocumentsNode) Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error) {
	switch operation {
	case "upload":
		var p uploadDocumentParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		attachment, err := binaryAttachment(item, p.BinaryProperty)
		if err != nil {
			return nil, err
		}
		name := p.Name
		if name == "" {
			name = attachment.FileName
		}
		return env.Client.Documents.Upload(ctx, env.OrganizationID, parseline.UploadDocumentRequest{
			Name:     name,
			Content:  attachment.Data,
			TagIDs:   p.TagIDs,
			Metadata: p.Metadata,
		})

	case "get":
		var p getDocumentParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Documents.Get(ctx, env.OrganizationID, p.DocumentID, parseline.GetDocumentRequest{
			FileType: p.FileType,
		})

	case "list":
		var p listDocumentsParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Documents.List(ctx, env.OrganizationID, parseline.ListDocumentsRequest{
			Limit:          p.Limit,
			Skip:           p.Skip,
			TagIDs:         p.TagIDs,
			NameSearch:     p.NameSearch,
			MetadataSearch: p.MetadataSearch,
		})

	case "update":
		var p updateDocumentParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Documents.Update(ctx, env.OrganizationID, p.DocumentID, parseline.UpdateDocumentRequest{
			Name:     p.Name,
			TagIDs:   p.TagIDs,
			Metadata: p.Metadata,
		})

	case "delete":
		var p deleteDocumentParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return env.Client.Documents.Delete(ctx, env.OrganizationID, p.DocumentID)
	}

	return nil, unsupported(n.Name(), operation)
}
