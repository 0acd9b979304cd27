// Package node implements the declarative node layer on top of the
// Parseline client: operation dispatch per resource area, per-item
// parameter decoding, organization-context resolution once per batch and
// ordered result collection with an optional continue-on-error policy.
package node

import (
	"context"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// GenericCallOperation is the host's generic passthrough sentinel. Nodes
// never implement it; callers are pointed at a generic HTTP request node
// instead.
const GenericCallOperation = "__CUSTOM_API_CALL__"

// Attachment is a named binary payload carried by an input item, used by
// upload operations.
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// Item is one unit of batch input: raw parameter values plus optional
// named binary attachments.
type Item struct {
	Params map[string]any
	Binary map[string]Attachment
}

// Result is one unit of batch output. Every input item yields exactly one
// Result at the same positional index; batch-level operations yield a
// single Result at index 0. When an item failed under the
// continue-on-error policy, Data holds {"error": message} and Err the
// original error.
type Result struct {
	Data            parseline.Payload
	SourceItemIndex int
	Err             error
}

// Env carries the per-batch execution context: the client, the
// organization ID resolved once before the item loop, and a logger.
type Env struct {
	Client         *parseline.Client
	OrganizationID string
	Logger         hclog.Logger
}

// Node declares one resource area: its operation set and how to execute a
// single operation against one item.
type Node interface {
	// Name is the resource area name, e.g. "documents".
	Name() string

	// Operations is the declared operation set.
	Operations() []string

	// BatchLevel reports whether the operation produces one aggregate
	// result for the whole batch instead of one result per item.
	BatchLevel(operation string) bool

	// RequiresOrganization reports whether operations need the
	// organization context resolved from the credential.
	RequiresOrganization() bool

	// Execute runs one operation against one item.
	Execute(ctx context.Context, env *Env, operation string, item Item) (parseline.Payload, error)
}

func operationSupported(n Node, operation string) bool {
	return slices.Contains(n.Operations(), operation)
}

func unsupported(resource, operation string) error {
	return &parseline.UnsupportedOperationError{
		Resource:  resource,
		Operation: operation,
	}
}
