// internal/users/service.go

package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/common/latency"
	"github.com/anisapp/anis-server/internal/common/utils"
)

var ErrUserNotFound = errors.New("user not found")

type Service interface {
	Create(ctx context.Context, dto *CreateUserDTO) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	UpdateInterests(ctx context.Context, userID string, dto *UpdateInterestsDTO) (*User, error)
	UpdateBio(ctx context.Context, userID string, dto *UpdateBioDTO) (*User, error)
	UpdateName(ctx context.Context, userID string, dto *UpdateNameDTO) (*User, error)
	UpdateSocialLinks(ctx context.Context, userID string, dto *UpdateSocialLinksDTO) (*User, error)

	// DisplayName resolves a user's name for denormalized snapshots
	// (activity host names, join request requester names).
	DisplayName(ctx context.Context, userID string) (string, error)
}

type service struct {
	repo  Repository
	delay *latency.Simulator
}

func NewService(repo Repository, delay *latency.Simulator) Service {
	return &service{
		repo:  repo,
		delay: delay,
	}
}

func (s *service) Create(ctx context.Context, dto *CreateUserDTO) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Email:        dto.Email,
		Age:          dto.Age,
		Interests:    toSportTypes(dto.Interests),
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if dto.Bio != "" {
		user.Bio = &dto.Bio
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Get(ctx context.Context, id string) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateInterests(ctx context.Context, userID string, dto *UpdateInterestsDTO) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}
	return s.repo.UpdateInterests(ctx, userID, toSportTypes(dto.Interests))
}

func (s *service) UpdateBio(ctx context.Context, userID string, dto *UpdateBioDTO) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}

	var bio *string
	if dto.Bio != "" {
		bio = &dto.Bio
	}
	return s.repo.UpdateBio(ctx, userID, bio)
}

func (s *service) UpdateName(ctx context.Context, userID string, dto *UpdateNameDTO) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}
	return s.repo.UpdateName(ctx, userID, dto.Name)
}

func (s *service) UpdateSocialLinks(ctx context.Context, userID string, dto *UpdateSocialLinksDTO) (*User, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}

	links := SocialLinks{
		Instagram: optional(dto.Instagram),
		X:         optional(dto.X),
		Snapchat:  optional(dto.Snapchat),
		TikTok:    optional(dto.TikTok),
		Website:   optional(dto.Website),
	}
	return s.repo.UpdateSocialLinks(ctx, userID, links)
}

func (s *service) DisplayName(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

func toSportTypes(raw []string) []activities.SportType {
	interests := make([]activities.SportType, 0, len(raw))
	for _, s := range raw {
		interests = append(interests, activities.SportType(s))
	}
	return interests
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
