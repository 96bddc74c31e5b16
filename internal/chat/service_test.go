package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[string]string

func (s stubUsers) DisplayName(ctx context.Context, userID string) (string, error) {
	name, ok := s[userID]
	if !ok {
		return "", ErrChatNotFound // any error will do for the stub
	}
	return name, nil
}

func newTestService() Service {
	users := stubUsers{
		"host1": "Yazeed Al-Rashid",
		"user2": "Ahmed Al-Mansouri",
	}
	return NewService(NewMemoryRepository(), users, nil)
}

func TestEnsureForActivityIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.EnsureForActivity(ctx, "act1", "Padel Warriors Match", "host1")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.EnsureForActivity(ctx, "act1", "Padel Warriors Match", "host1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	chats, err := svc.ListForUser(ctx, "host1")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, []string{"host1"}, chats[0].Participants)
}

func TestSendMessageUpdatesLastMessage(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	chatID, err := svc.EnsureForActivity(ctx, "act1", "Padel Warriors Match", "host1")
	require.NoError(t, err)

	msg, err := svc.SendMessage(ctx, chatID, "host1", &SendMessageDTO{Content: "Hey everyone!"})
	require.NoError(t, err)
	assert.Equal(t, MessageText, msg.MessageType)
	assert.Equal(t, "Yazeed Al-Rashid", msg.SenderName)

	chats, err := svc.ListForUser(ctx, "host1")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	require.NotNil(t, chats[0].LastMessage)
	assert.Equal(t, msg.ID, chats[0].LastMessage.ID)

	history, err := svc.Messages(ctx, chatID, "host1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Hey everyone!", history[0].Content)
}

func TestSendMessageRequiresParticipant(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	chatID, err := svc.EnsureForActivity(ctx, "act1", "Padel Warriors Match", "host1")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, chatID, "user2", &SendMessageDTO{Content: "Let me in"})
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.Messages(ctx, chatID, "user2")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestAddParticipantPostsJoinNotice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	chatID, err := svc.EnsureForActivity(ctx, "act1", "Padel Warriors Match", "host1")
	require.NoError(t, err)

	require.NoError(t, svc.AddParticipant(ctx, chatID, "user2", "Ahmed Al-Mansouri"))

	history, err := svc.Messages(ctx, chatID, "user2")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, MessageJoin, history[0].MessageType)
	assert.Equal(t, "Ahmed Al-Mansouri joined the activity", history[0].Content)
	assert.Equal(t, "system", history[0].SenderID)

	// Joining twice must not duplicate the membership.
	require.NoError(t, svc.AddParticipant(ctx, chatID, "user2", "Ahmed Al-Mansouri"))
	chats, err := svc.ListForUser(ctx, "user2")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, []string{"host1", "user2"}, chats[0].Participants)
}

func TestUnknownChatFails(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Messages(ctx, "missing", "host1")
	assert.ErrorIs(t, err, ErrChatNotFound)

	_, err = svc.SendMessage(ctx, "missing", "host1", &SendMessageDTO{Content: "hello"})
	assert.ErrorIs(t, err, ErrChatNotFound)

	err = svc.AddParticipant(ctx, "missing", "user2", "Ahmed Al-Mansouri")
	assert.ErrorIs(t, err, ErrChatNotFound)
}
