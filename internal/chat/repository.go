// internal/chat/repository.go

package chat

import (
	"context"
	"sync"
	"time"
)

// Repository defines chat storage. Chats are keyed by ID with a
// one-to-one link back to their activity; message history is kept per
// chat in send order.
type Repository interface {
	CreateChat(ctx context.Context, c *Chat) error
	GetChat(ctx context.Context, id string) (*Chat, error)
	GetChatByActivity(ctx context.Context, activityID string) (*Chat, error)
	ListChatsForUser(ctx context.Context, userID string) ([]*Chat, error)
	AddParticipant(ctx context.Context, chatID, userID string) error
	AppendMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, chatID string) ([]*Message, error)
}

// memoryRepository implements Repository with process-memory storage.
type memoryRepository struct {
	mu         sync.RWMutex
	chats      map[string]Chat
	byActivity map[string]string
	messages   map[string][]Message
}

// NewMemoryRepository creates an empty in-memory chat repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		chats:      make(map[string]Chat),
		byActivity: make(map[string]string),
		messages:   make(map[string][]Message),
	}
}

func (r *memoryRepository) CreateChat(ctx context.Context, c *Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.chats[c.ID] = *c
	r.byActivity[c.ActivityID] = c.ID
	return nil
}

func (r *memoryRepository) GetChat(ctx context.Context, id string) (*Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.chats[id]
	if !ok {
		return nil, ErrChatNotFound
	}
	return &c, nil
}

func (r *memoryRepository) GetChatByActivity(ctx context.Context, activityID string) (*Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byActivity[activityID]
	if !ok {
		return nil, ErrChatNotFound
	}
	c := r.chats[id]
	return &c, nil
}

func (r *memoryRepository) ListChatsForUser(ctx context.Context, userID string) ([]*Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Chat
	for id := range r.chats {
		c := r.chats[id]
		for _, p := range c.Participants {
			if p == userID {
				result = append(result, &c)
				break
			}
		}
	}
	return result, nil
}

func (r *memoryRepository) AddParticipant(ctx context.Context, chatID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chats[chatID]
	if !ok {
		return ErrChatNotFound
	}

	for _, p := range c.Participants {
		if p == userID {
			return nil
		}
	}

	c.Participants = append(append([]string{}, c.Participants...), userID)
	c.UpdatedAt = time.Now()
	r.chats[chatID] = c
	return nil
}

func (r *memoryRepository) AppendMessage(ctx context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.chats[msg.ChatID]
	if !ok {
		return ErrChatNotFound
	}

	r.messages[msg.ChatID] = append(r.messages[msg.ChatID], *msg)

	m := *msg
	c.LastMessage = &m
	c.UpdatedAt = msg.CreatedAt
	r.chats[msg.ChatID] = c
	return nil
}

func (r *memoryRepository) ListMessages(ctx context.Context, chatID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.chats[chatID]; !ok {
		return nil, ErrChatNotFound
	}

	history := r.messages[chatID]
	result := make([]*Message, 0, len(history))
	for i := range history {
		m := history[i]
		result = append(result, &m)
	}
	return result, nil
}
