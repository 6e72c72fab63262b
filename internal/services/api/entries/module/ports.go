package module

import (
	"context"

	"voicejournal/internal/services/api/entries/domain"
	entriessvc "voicejournal/internal/services/api/entries/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptEntriesPort struct{ svc *entriessvc.Service }

// Create persists a new journal entry for the user
func (a adaptEntriesPort) Create(
	ctx context.Context,
	userID string,
	in domain.CreateInput,
) (domain.CreateResult, error) {
	return a.svc.Create(ctx, userID, in)
}

// List returns a filtered page of the user's entries
func (a adaptEntriesPort) List(ctx context.Context, userID string, q domain.ListQuery) (domain.ListResult, error) {
	return a.svc.List(ctx, userID, q)
}

// Get returns a single entry owned by the user
func (a adaptEntriesPort) Get(ctx context.Context, userID, entryID string) (domain.Entry, error) {
	return a.svc.Get(ctx, userID, entryID)
}

// Update replaces the mutable fields of an entry
func (a adaptEntriesPort) Update(
	ctx context.Context,
	userID, entryID string,
	in domain.UpdateInput,
) (domain.UpdateResult, error) {
	return a.svc.Update(ctx, userID, entryID, in)
}

// Delete removes an entry owned by the user
func (a adaptEntriesPort) Delete(ctx context.Context, userID, entryID string) (domain.DeleteResult, error) {
	return a.svc.Delete(ctx, userID, entryID)
}
