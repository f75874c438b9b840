package task

import "context"

// Repository provides persistence for board tasks.
type Repository interface {
	// FetchForProject returns every task in the project, in no guaranteed order.
	FetchForProject(ctx context.Context, projectID string) ([]Task, error)
	// SaveColumns replaces the stored state of every column present in cols,
	// atomically from the engine's perspective.
	SaveColumns(ctx context.Context, projectID string, cols Columns) error
}
