package services

import (
	"context"
	"errors"

	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// EdgeStore is the relationship-store view the toggle engine needs: presence,
// create, delete, and a target-scoped count, all keyed by (target, subject).
// Create must report a uniqueness-constraint conflict as
// repositories.ErrDuplicateEdge and Delete a missing edge as
// repositories.ErrEdgeNotFound.
type EdgeStore[T comparable] interface {
	Exists(ctx context.Context, target T, subject uint) (bool, error)
	Create(ctx context.Context, target T, subject uint) error
	Delete(ctx context.Context, target T, subject uint) error
	Count(ctx context.Context, target T) (int64, error)
}

// ToggleResult reports the edge's presence after the toggle and the total
// number of edges on the target.
type ToggleResult struct {
	Active     bool  `json:"active"`
	TotalCount int64 `json:"totalCount"`
}

// toggleEdge flips the (subject, target) edge. It is optimistic: no locks, no
// transactions. A concurrent request creating the same edge loses the insert
// to the store's uniqueness constraint, and that conflict is absorbed as
// success — the constraint, not this check-then-act sequence, is the source of
// truth for "does this edge exist". A concurrent delete of an edge we also
// tried to delete is absorbed the same way. Active is re-derived from the
// store afterwards rather than trusted from the branch taken, so interleavings
// still report the state that actually resulted.
func toggleEdge[T comparable](ctx context.Context, edges EdgeStore[T], target T, subject uint) (ToggleResult, error) {
	present, err := edges.Exists(ctx, target, subject)
	if err != nil {
		return ToggleResult{}, err
	}

	if present {
		if err := edges.Delete(ctx, target, subject); err != nil && !errors.Is(err, repositories.ErrEdgeNotFound) {
			return ToggleResult{}, err
		}
	} else {
		if err := edges.Create(ctx, target, subject); err != nil && !errors.Is(err, repositories.ErrDuplicateEdge) {
			return ToggleResult{}, err
		}
	}

	active, err := edges.Exists(ctx, target, subject)
	if err != nil {
		return ToggleResult{}, err
	}
	total, err := edges.Count(ctx, target)
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Active: active, TotalCount: total}, nil
}
