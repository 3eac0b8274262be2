package session

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/entity"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/internal/errors"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/mapper"
	"github.com/jdtbridge/jdtls-bridge/src/jdtls/model"
	tally "github.com/uber-go/tally/v4"
)

// Repository is an entity-scoped repository.
type Repository interface {
	Get(context.Context, uuid.UUID) (*entity.Session, error)
	GetFromContext(ctx context.Context) (*entity.Session, error)
	GetActiveByWorkspaceRoot(ctx context.Context, workspaceRoot string) (*entity.Session, error)
	Set(context.Context, *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	SessionCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID]*model.Session
	stats    tally.Scope
}

// New returns a repository to a key-value Session data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uuid.UUID]*model.Session),
		stats:    stats,
	}
}

// Get returns the Session associated with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.memstore[id]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return mapper.ModelToSession(f)
}

// GetFromContext returns the Session associated with the given context.
func (r *repository) GetFromContext(ctx context.Context) (*entity.Session, error) {
	uuid, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, uuid)
}

// Set sets the Session to its associated uuid. A session in an active state may
// not be stored while a different active session exists for the same workspace
// root; the prior session must be fully stopped first.
func (r *repository) Set(ctx context.Context, f *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f == nil {
		return errors.New("can't save nil session")
	}

	if f.State.Active() && f.WorkspaceRoot != "" {
		for id, s := range r.memstore {
			if id != f.UUID && s.WorkspaceRoot == f.WorkspaceRoot && entity.SessionState(s.State).Active() {
				return &errors.DuplicateWorkspaceError{WorkspaceRoot: f.WorkspaceRoot, ActiveUUID: id}
			}
		}
	}

	r.memstore[f.UUID] = mapper.SessionToModel(f)
	r.stats.Gauge("active_sessions").Update(float64(len(r.memstore)))
	return nil
}

// Delete removes the Session associated with the given id.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, id)
	r.stats.Gauge("active_sessions").Update(float64(len(r.memstore)))
	return nil
}

// SessionCount returns the total count of stored sessions.
func (r *repository) SessionCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}

// GetActiveByWorkspaceRoot returns the active session for a workspace root, if any.
func (r *repository) GetActiveByWorkspaceRoot(ctx context.Context, workspaceRoot string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.memstore {
		if s.WorkspaceRoot == workspaceRoot && entity.SessionState(s.State).Active() {
			return mapper.ModelToSession(s)
		}
	}
	return nil, errors.NoActiveSessionError
}
