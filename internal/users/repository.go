// internal/users/repository.go

package users

import (
	"context"
	"sync"
	"time"

	"github.com/anisapp/anis-server/internal/activities"
)

// Repository defines the user storage interface. Field updates are
// atomic per call: each one rewrites the whole record under the write
// lock with only the targeted fields changed. There is no cross-call
// transaction; two concurrent updates to the same user resolve
// last-write-wins at field-group granularity.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateInterests(ctx context.Context, userID string, interests []activities.SportType) (*User, error)
	UpdateBio(ctx context.Context, userID string, bio *string) (*User, error)
	UpdateName(ctx context.Context, userID string, name string) (*User, error)
	UpdateSocialLinks(ctx context.Context, userID string, links SocialLinks) (*User, error)
}

// memoryRepository implements Repository with process-memory storage.
type memoryRepository struct {
	mu    sync.RWMutex
	items map[string]User
}

// NewMemoryRepository creates an empty in-memory user repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		items: make(map[string]User),
	}
}

func (r *memoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[user.ID] = *user
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryRepository) UpdateInterests(ctx context.Context, userID string, interests []activities.SportType) (*User, error) {
	return r.update(userID, func(u *User) {
		u.Interests = interests
	})
}

func (r *memoryRepository) UpdateBio(ctx context.Context, userID string, bio *string) (*User, error) {
	return r.update(userID, func(u *User) {
		u.Bio = bio
	})
}

func (r *memoryRepository) UpdateName(ctx context.Context, userID string, name string) (*User, error) {
	return r.update(userID, func(u *User) {
		u.Name = name
	})
}

func (r *memoryRepository) UpdateSocialLinks(ctx context.Context, userID string, links SocialLinks) (*User, error) {
	return r.update(userID, func(u *User) {
		u.Social = links
	})
}

// update replaces the stored record with a mutated copy under the write
// lock, keeping each field-group update atomic.
func (r *memoryRepository) update(userID string, mutate func(*User)) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.items[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	mutate(&user)
	user.LastActiveAt = time.Now()
	r.items[userID] = user

	return &user, nil
}
