// internal/requests/repository.go

package requests

import (
	"context"
	"sync"
	"time"
)

// Repository defines join-request storage. Records are never deleted;
// resolved requests stay queryable with their terminal status.
type Repository interface {
	Create(ctx context.Context, req *JoinRequest) error
	GetByID(ctx context.Context, id string) (*JoinRequest, error)

	// FindPending returns the open request for a (requester, activity)
	// pair, if one exists. At most one can exist at a time.
	FindPending(ctx context.Context, requesterID, activityID string) (*JoinRequest, error)

	ListPendingByRequester(ctx context.Context, requesterID string) ([]*JoinRequest, error)
	ListPendingByActivities(ctx context.Context, activityIDs []string) ([]*JoinRequest, error)

	// Resolve transitions a pending request to a terminal status. It
	// fails with ErrRequestAlreadyResolved when the request is already
	// terminal, so accept/decline/cancel cannot race each other into a
	// double transition.
	Resolve(ctx context.Context, id string, status Status) (*JoinRequest, error)
}

// memoryRepository implements Repository with process-memory storage.
type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]JoinRequest
	order []string
}

// NewMemoryRepository creates an empty in-memory join-request repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items: make(map[string]JoinRequest),
	}
}

func (r *memoryRepository) Create(ctx context.Context, req *JoinRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[req.ID] = *req
	r.order = append(r.order, req.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*JoinRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return &req, nil
}

func (r *memoryRepository) FindPending(ctx context.Context, requesterID, activityID string) (*JoinRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		req := r.items[id]
		if req.Status == StatusPending && req.RequesterUserID == requesterID && req.TargetActivityID == activityID {
			return &req, nil
		}
	}
	return nil, ErrRequestNotFound
}

func (r *memoryRepository) ListPendingByRequester(ctx context.Context, requesterID string) ([]*JoinRequest, error) {
	return r.filter(func(req *JoinRequest) bool {
		return req.Status == StatusPending && req.RequesterUserID == requesterID
	})
}

func (r *memoryRepository) ListPendingByActivities(ctx context.Context, activityIDs []string) ([]*JoinRequest, error) {
	ids := make(map[string]struct{}, len(activityIDs))
	for _, id := range activityIDs {
		ids[id] = struct{}{}
	}

	return r.filter(func(req *JoinRequest) bool {
		if req.Status != StatusPending {
			return false
		}
		_, ok := ids[req.TargetActivityID]
		return ok
	})
}

func (r *memoryRepository) filter(keep func(*JoinRequest) bool) ([]*JoinRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*JoinRequest
	for _, id := range r.order {
		req := r.items[id]
		if keep(&req) {
			result = append(result, &req)
		}
	}
	return result, nil
}

func (r *memoryRepository) Resolve(ctx context.Context, id string, status Status) (*JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.items[id]
	if !ok {
		return nil, ErrRequestNotFound
	}

	if req.Status.IsTerminal() {
		return nil, ErrRequestAlreadyResolved
	}

	now := time.Now()
	req.Status = status
	req.RespondedAt = &now
	r.items[id] = req

	return &req, nil
}
