package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisapp/anis-server/internal/activities"
)

func newTestService() Service {
	return NewService(NewMemoryRepository(), nil)
}

func createTestUser(t *testing.T, svc Service) *User {
	t.Helper()

	user, err := svc.Create(context.Background(), &CreateUserDTO{
		Name:      "Yazeed Al-Rashid",
		Email:     "yazeed@example.com",
		Interests: []string{"padel", "tennis"},
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	svc := newTestService()
	user := createTestUser(t, svc)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Yazeed Al-Rashid", user.Name)
	assert.Equal(t, []activities.SportType{activities.SportPadel, activities.SportTennis}, user.Interests)
	assert.Nil(t, user.Bio)
}

func TestCreateUserValidatesEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &CreateUserDTO{
		Name:  "Someone",
		Email: "not-an-email",
	})
	assert.Error(t, err)
}

func TestCreateUserRejectsUnknownInterest(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &CreateUserDTO{
		Name:      "Someone",
		Email:     "someone@example.com",
		Interests: []string{"chess"},
	})
	assert.Error(t, err)
}

func TestUpdateBioRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	user := createTestUser(t, svc)

	updated, err := svc.UpdateBio(ctx, user.ID, &UpdateBioDTO{Bio: "Padel enthusiast"})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Padel enthusiast", *updated.Bio)

	// Only the bio changed; identity and the other field groups are intact.
	fetched, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, user.Name, fetched.Name)
	assert.Equal(t, user.Interests, fetched.Interests)
	require.NotNil(t, fetched.Bio)
	assert.Equal(t, "Padel enthusiast", *fetched.Bio)
}

func TestUpdateInterestsReplacesWholeList(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	user := createTestUser(t, svc)

	updated, err := svc.UpdateInterests(ctx, user.ID, &UpdateInterestsDTO{Interests: []string{"yoga"}})
	require.NoError(t, err)
	assert.Equal(t, []activities.SportType{activities.SportYoga}, updated.Interests)
}

func TestUpdateName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	user := createTestUser(t, svc)

	updated, err := svc.UpdateName(ctx, user.ID, &UpdateNameDTO{Name: "Yazeed R."})
	require.NoError(t, err)
	assert.Equal(t, "Yazeed R.", updated.Name)
	assert.Equal(t, user.ID, updated.ID)
}

func TestUpdateSocialLinks(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	user := createTestUser(t, svc)

	updated, err := svc.UpdateSocialLinks(ctx, user.ID, &UpdateSocialLinksDTO{
		Instagram: "yazeed.plays",
		Website:   "https://yazeed.example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Social.Instagram)
	assert.Equal(t, "yazeed.plays", *updated.Social.Instagram)
	assert.Nil(t, updated.Social.Snapchat)
}

func TestUpdateUnknownUserFails(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateBio(ctx, "missing", &UpdateBioDTO{Bio: "hi"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateName(ctx, "missing", &UpdateNameDTO{Name: "New Name"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUnknownUserFails(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDisplayName(t *testing.T) {
	svc := newTestService()
	user := createTestUser(t, svc)

	name, err := svc.DisplayName(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, name)
}
