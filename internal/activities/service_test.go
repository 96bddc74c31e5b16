package activities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHosts map[string]string

func (s stubHosts) DisplayName(ctx context.Context, userID string) (string, error) {
	name, ok := s[userID]
	if !ok {
		return "", ErrHostNotFound
	}
	return name, nil
}

type stubChats struct {
	created map[string]string
}

func (s *stubChats) EnsureForActivity(ctx context.Context, activityID, activityTitle, hostID string) (string, error) {
	if s.created == nil {
		s.created = make(map[string]string)
	}
	chatID := "chat-" + activityID
	s.created[activityID] = chatID
	return chatID, nil
}

func newTestService(chats ChatCreator) Service {
	hosts := stubHosts{"host1": "Yazeed Al-Rashid", "host2": "Sarah Johnson"}
	return NewService(NewMemoryRepository(), hosts, chats, nil)
}

func validDTO(startsIn time.Duration) *CreateActivityDTO {
	return &CreateActivityDTO{
		Title:           "Padel Warriors Match",
		Description:     "Friendly padel session",
		SportType:       "padel",
		Latitude:        24.7136,
		Longitude:       46.6753,
		Address:         "King Fahd Stadium, Riyadh",
		DateTime:        time.Now().Add(startsIn).Format(time.RFC3339),
		MaxParticipants: 4,
		SkillLevel:      "intermediate",
	}
}

func TestCreateActivityDefaults(t *testing.T) {
	chats := &stubChats{}
	svc := newTestService(chats)
	ctx := context.Background()

	activity, err := svc.Create(ctx, "host1", validDTO(time.Hour))
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, "Yazeed Al-Rashid", activity.HostName)
	assert.Equal(t, 1, activity.CurrentParticipants)
	assert.Equal(t, StatusOpen, activity.Status)
	require.NotNil(t, activity.ChatID)
	assert.Equal(t, chats.created[activity.ID], *activity.ChatID)

	fetched, err := svc.Get(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.ID, fetched.ID)
	require.NotNil(t, fetched.ChatID)
}

func TestCreateActivityWithoutChatCreator(t *testing.T) {
	svc := newTestService(nil)

	activity, err := svc.Create(context.Background(), "host1", validDTO(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, activity.ChatID)
}

func TestCreateActivityUnknownHost(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Create(context.Background(), "ghost", validDTO(time.Hour))
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestCreateActivityRejectsBadSchedule(t *testing.T) {
	svc := newTestService(nil)

	dto := validDTO(time.Hour)
	dto.DateTime = "tomorrow at noon"

	_, err := svc.Create(context.Background(), "host1", dto)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestCreateActivityRejectsTinyRoster(t *testing.T) {
	svc := newTestService(nil)

	dto := validDTO(time.Hour)
	dto.MaxParticipants = 1

	_, err := svc.Create(context.Background(), "host1", dto)
	assert.Error(t, err)
}

func TestGetUnknownActivity(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestListUpcomingFiltersAndSorts(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	later, err := svc.Create(ctx, "host1", validDTO(3*time.Hour))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "host1", validDTO(-time.Hour)) // already started
	require.NoError(t, err)
	sooner, err := svc.Create(ctx, "host2", validDTO(time.Hour))
	require.NoError(t, err)

	upcoming, err := svc.ListUpcoming(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, sooner.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
}

func TestListByHostAndSport(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "host1", validDTO(time.Hour))
	require.NoError(t, err)

	tennis := validDTO(2 * time.Hour)
	tennis.SportType = "tennis"
	_, err = svc.Create(ctx, "host2", tennis)
	require.NoError(t, err)

	byHost, err := svc.ListByHost(ctx, "host1")
	require.NoError(t, err)
	require.Len(t, byHost, 1)
	assert.Equal(t, "host1", byHost[0].HostID)

	bySport, err := svc.ListBySport(ctx, SportTennis)
	require.NoError(t, err)
	require.Len(t, bySport, 1)
	assert.Equal(t, SportTennis, bySport[0].SportType)
}

func TestAddParticipantCapsAtCapacity(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	dto := validDTO(time.Hour)
	dto.MaxParticipants = 2
	activity, err := svc.Create(ctx, "host1", dto)
	require.NoError(t, err)

	updated, err := svc.AddParticipant(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentParticipants)
	assert.Equal(t, StatusFull, updated.Status)

	_, err = svc.AddParticipant(ctx, activity.ID)
	assert.ErrorIs(t, err, ErrActivityFull)

	// The failed claim must not corrupt the roster.
	fetched, err := svc.Get(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.CurrentParticipants)
	assert.LessOrEqual(t, fetched.CurrentParticipants, fetched.MaxParticipants)
	assert.GreaterOrEqual(t, fetched.CurrentParticipants, 1)
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.AddParticipant(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
