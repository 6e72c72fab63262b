package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Create(ctx context.Context, userID string, in CreateInput) (CreateResult, error)
	List(ctx context.Context, userID string, q ListQuery) (ListResult, error)
	Get(ctx context.Context, userID, entryID string) (Entry, error)
	Update(ctx context.Context, userID, entryID string, in UpdateInput) (UpdateResult, error)
	Delete(ctx context.Context, userID, entryID string) (DeleteResult, error)
}
