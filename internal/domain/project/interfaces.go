package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	GetByName(ctx context.Context, name string) (*Project, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, name string) error
}
