package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/chat"
	"github.com/anisapp/anis-server/internal/requests"
	"github.com/anisapp/anis-server/internal/users"
)

func TestLoadPopulatesAllStores(t *testing.T) {
	ctx := context.Background()
	stores := Stores{
		Users:      users.NewMemoryRepository(),
		Activities: activities.NewMemoryRepository(),
		Requests:   requests.NewMemoryRepository(),
		Chats:      chat.NewMemoryRepository(),
	}

	require.NoError(t, Load(ctx, stores))

	user, err := stores.Users.GetByID(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, "Yazeed Al-Rashid", user.Name)
	assert.Contains(t, user.Interests, activities.SportPadel)

	upcoming, err := stores.Activities.ListUpcoming(ctx, time.Now())
	require.NoError(t, err)
	assert.Len(t, upcoming, 8)

	// The first activity carries a linked chat with its demo history.
	first := upcoming[0]
	require.NotNil(t, first.ChatID)
	c, err := stores.Chats.GetChat(ctx, *first.ChatID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, c.ActivityID)
	assert.Contains(t, c.Participants, first.HostID)
	require.NotNil(t, c.LastMessage)

	history, err := stores.Chats.ListMessages(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, history, 4)
	assert.Equal(t, chat.MessageJoin, history[1].MessageType)

	// Two demo join requests start out pending.
	pending, err := stores.Requests.ListPendingByRequester(ctx, "user2")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, requests.StatusPending, pending[0].Status)

	pending, err = stores.Requests.ListPendingByRequester(ctx, "user1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestSeededRequestsResolveThroughTheWorkflow(t *testing.T) {
	ctx := context.Background()
	stores := Stores{
		Users:      users.NewMemoryRepository(),
		Activities: activities.NewMemoryRepository(),
		Requests:   requests.NewMemoryRepository(),
		Chats:      chat.NewMemoryRepository(),
	}
	require.NoError(t, Load(ctx, stores))

	usersService := users.NewService(stores.Users, nil)
	chatService := chat.NewService(stores.Chats, usersService, nil)
	activitiesService := activities.NewService(stores.Activities, usersService, chatService, nil)
	requestsService := requests.NewService(stores.Requests, activitiesService, usersService, chatService, nil)

	inbox, err := requestsService.ListForUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, inbox.Incoming, 1)
	require.Len(t, inbox.Pending, 1)

	resolved, err := requestsService.Accept(ctx, inbox.Incoming[0].ID, "user1")
	require.NoError(t, err)
	assert.Equal(t, requests.StatusAccepted, resolved.Status)

	activity, err := activitiesService.Get(ctx, resolved.TargetActivityID)
	require.NoError(t, err)
	assert.Equal(t, 2, activity.CurrentParticipants)
}
