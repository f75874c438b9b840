package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	Add(ctx context.Context, proj *Project) error
	Update(ctx context.Context, id string, patch Patch) (*Project, error)
	Delete(ctx context.Context, id string) error
	// ExistsByTitle reflects the latest committed state; it backs
	// duplicate-title rejection.
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
