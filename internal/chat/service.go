// internal/chat/service.go

package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/anisapp/anis-server/internal/common/latency"
	"github.com/anisapp/anis-server/internal/common/utils"
)

var (
	ErrChatNotFound   = errors.New("chat not found")
	ErrNotParticipant = errors.New("user is not a participant of this chat")
)

// UserDirectory resolves sender display names from the user store.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

type Service interface {
	// EnsureForActivity returns the chat tied to an activity, creating
	// it with the host as the first participant when missing.
	EnsureForActivity(ctx context.Context, activityID, activityTitle, hostID string) (string, error)

	ListForUser(ctx context.Context, userID string) ([]*Chat, error)
	Messages(ctx context.Context, chatID, userID string) ([]*Message, error)
	SendMessage(ctx context.Context, chatID, senderID string, dto *SendMessageDTO) (*Message, error)

	// AddParticipant admits an accepted requester to the activity chat
	// and posts the system notice the other members see.
	AddParticipant(ctx context.Context, chatID, userID, userName string) error
}

type service struct {
	repo  Repository
	users UserDirectory
	delay *latency.Simulator
}

func NewService(repo Repository, users UserDirectory, delay *latency.Simulator) Service {
	return &service{
		repo:  repo,
		users: users,
		delay: delay,
	}
}

func (s *service) EnsureForActivity(ctx context.Context, activityID, activityTitle, hostID string) (string, error) {
	existing, err := s.repo.GetChatByActivity(ctx, activityID)
	if err == nil {
		return existing.ID, nil
	}
	if err != ErrChatNotFound {
		return "", err
	}

	now := time.Now()
	c := &Chat{
		ID:            uuid.NewString(),
		ActivityID:    activityID,
		ActivityTitle: activityTitle,
		Participants:  []string{hostID},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateChat(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Chat, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	chats, err := s.repo.ListChatsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Most recently active first.
	sort.Slice(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})
	return chats, nil
}

func (s *service) Messages(ctx context.Context, chatID, userID string) ([]*Message, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, chatID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, chatID)
}

func (s *service) SendMessage(ctx context.Context, chatID, senderID string, dto *SendMessageDTO) (*Message, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, chatID, senderID); err != nil {
		return nil, err
	}

	senderName, err := s.users.DisplayName(ctx, senderID)
	if err != nil {
		return nil, err
	}

	messageType := MessageText
	if dto.MessageType != "" {
		messageType = MessageType(dto.MessageType)
	}

	msg := &Message{
		ID:          uuid.NewString(),
		ChatID:      chatID,
		SenderID:    senderID,
		SenderName:  senderName,
		Content:     dto.Content,
		MessageType: messageType,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *service) AddParticipant(ctx context.Context, chatID, userID, userName string) error {
	if err := s.repo.AddParticipant(ctx, chatID, userID); err != nil {
		return err
	}

	notice := &Message{
		ID:          uuid.NewString(),
		ChatID:      chatID,
		SenderID:    "system",
		SenderName:  "System",
		Content:     fmt.Sprintf("%s joined the activity", userName),
		MessageType: MessageJoin,
		CreatedAt:   time.Now(),
	}
	return s.repo.AppendMessage(ctx, notice)
}

func (s *service) requireParticipant(ctx context.Context, chatID, userID string) error {
	c, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		return err
	}
	for _, p := range c.Participants {
		if p == userID {
			return nil
		}
	}
	return ErrNotParticipant
}
