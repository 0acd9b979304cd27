package node

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/parseline/parseline-go/pkg/parseline"
)

// Runner executes one declared operation over a batch of input items.
// Items are processed sequentially in input order, one request per item;
// batch-level operations issue exactly one request regardless of batch
// size.
type Runner struct {
	Client *parseline.Client
	Logger hclog.Logger

	// ContinueOnError converts per-item failures into {"error": message}
	// results at the failed item's position instead of aborting the
	// batch.
	ContinueOnError bool
}

// NewRunner creates a Runner for the given client.
func NewRunner(client *parseline.Client, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		Client: client,
		Logger: logger.Named("node-runner"),
	}
}

// Run executes operation on node over items and returns one ordered
// Result per item (or a single Result for batch-level operations). The
// organization context is resolved once, before the item loop, for nodes
// that need it.
func (r *Runner) Run(ctx context.Context, n Node, operation string, items []Item) ([]Result, error) {
	if operation == GenericCallOperation {
		return nil, &parseline.UnsupportedOperationError{
			Resource:  n.Name(),
			Operation: operation,
			Hint:      "use a generic HTTP request node with the Parseline credential instead",
		}
	}
	if !operationSupported(n, operation) {
		return nil, unsupported(n.Name(), operation)
	}

	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	env := &Env{
		Client: r.Client,
		Logger: logger.Named(n.Name()),
	}

	if n.RequiresOrganization() {
		orgID, err := r.Client.Account.ResolveOrganization(ctx)
		if err != nil {
			return nil, err
		}
		env.OrganizationID = orgID
	}

	if n.BatchLevel(operation) {
		return r.runBatchLevel(ctx, n, env, operation, items)
	}

	results := make([]Result, 0, len(items))
	var itemErrs *multierror.Error

	for i, item := range items {
		payload, err := n.Execute(ctx, env, operation, item)
		if err != nil {
			if !r.ContinueOnError {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			itemErrs = multierror.Append(itemErrs, fmt.Errorf("item %d: %w", i, err))
			results = append(results, Result{
				Data:            parseline.Payload{"error": err.Error()},
				SourceItemIndex: i,
				Err:             err,
			})
			continue
		}
		results = append(results, Result{Data: payload, SourceItemIndex: i})
	}

	if err := itemErrs.ErrorOrNil(); err != nil {
		logger.Warn("batch completed with item errors",
			"resource", n.Name(),
			"operation", operation,
			"failed", len(itemErrs.Errors),
			"total", len(items),
			"error", err,
		)
	}

	return results, nil
}

// runBatchLevel executes an aggregate operation: parameters come from the
// first item and exactly one result is produced, associated with index 0.
func (r *Runner) runBatchLevel(ctx context.Context, n Node, env *Env, operation string, items []Item) ([]Result, error) {
	var first Item
	if len(items) > 0 {
		first = items[0]
	}

	payload, err := n.Execute(ctx, env, operation, first)
	if err != nil {
		if !r.ContinueOnError {
			return nil, fmt.Errorf("item 0: %w", err)
		}
		return []Result{{
			Data:            parseline.Payload{"error": err.Error()},
			SourceItemIndex: 0,
			Err:             err,
		}}, nil
	}

	return []Result{{Data: payload, SourceItemIndex: 0}}, nil
}
