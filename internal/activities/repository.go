// internal/activities/repository.go

package activities

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Repository defines the activity storage interface.
type Repository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id string) (*Activity, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]*Activity, error)
	ListByHost(ctx context.Context, hostID string) ([]*Activity, error)
	ListBySport(ctx context.Context, sport SportType) ([]*Activity, error)
	SetChatID(ctx context.Context, id string, chatID string) error

	// AddParticipant atomically claims a roster slot. It returns
	// ErrActivityFull when no slot remains and flips the status to
	// full when the last slot is taken.
	AddParticipant(ctx context.Context, id string) (*Activity, error)
}

// memoryRepository implements Repository with process-memory storage.
// All state lives for the lifetime of the process; there is no
// persistence behind it.
type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]Activity
	order []string
}

// NewMemoryRepository creates an empty in-memory activity repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items: make(map[string]Activity),
	}
}

func (r *memoryRepository) Create(ctx context.Context, activity *Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[activity.ID] = *activity
	r.order = append(r.order, activity.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.items[id]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return &activity, nil
}

func (r *memoryRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Activity
	for _, id := range r.order {
		activity := r.items[id]
		if activity.DateTime.After(now) {
			result = append(result, &activity)
		}
	}

	// Soonest first. The mobile client rendered these on a map and a
	// chronological list, so insertion order is not useful here.
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateTime.Before(result[j].DateTime)
	})

	return result, nil
}

func (r *memoryRepository) ListByHost(ctx context.Context, hostID string) ([]*Activity, error) {
	return r.filter(func(a *Activity) bool { return a.HostID == hostID })
}

func (r *memoryRepository) ListBySport(ctx context.Context, sport SportType) ([]*Activity, error) {
	return r.filter(func(a *Activity) bool { return a.SportType == sport })
}

func (r *memoryRepository) filter(keep func(*Activity) bool) ([]*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Activity
	for _, id := range r.order {
		activity := r.items[id]
		if keep(&activity) {
			result = append(result, &activity)
		}
	}
	return result, nil
}

func (r *memoryRepository) SetChatID(ctx context.Context, id string, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.items[id]
	if !ok {
		return ErrActivityNotFound
	}

	activity.ChatID = &chatID
	activity.UpdatedAt = time.Now()
	r.items[id] = activity
	return nil
}

func (r *memoryRepository) AddParticipant(ctx context.Context, id string) (*Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.items[id]
	if !ok {
		return nil, ErrActivityNotFound
	}

	if activity.CurrentParticipants >= activity.MaxParticipants {
		return nil, ErrActivityFull
	}

	activity.CurrentParticipants++
	if activity.CurrentParticipants >= activity.MaxParticipants {
		activity.Status = StatusFull
	}
	activity.UpdatedAt = time.Now()
	r.items[id] = activity

	return &activity, nil
}
