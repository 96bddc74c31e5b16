// internal/activities/service.go

package activities

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/anisapp/anis-server/internal/common/latency"
	"github.com/anisapp/anis-server/internal/common/utils"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrActivityFull     = errors.New("activity has no open slots")
	ErrHostNotFound     = errors.New("host user not found")
	ErrInvalidSchedule  = errors.New("date_time must be a valid RFC3339 timestamp")
)

// HostDirectory resolves host display names from the user store.
type HostDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// ChatCreator opens the group chat tied to a newly created activity.
type ChatCreator interface {
	EnsureForActivity(ctx context.Context, activityID, activityTitle, hostID string) (chatID string, err error)
}

type Service interface {
	Create(ctx context.Context, hostID string, dto *CreateActivityDTO) (*Activity, error)
	Get(ctx context.Context, id string) (*Activity, error)
	ListUpcoming(ctx context.Context) ([]*Activity, error)
	ListByHost(ctx context.Context, hostID string) ([]*Activity, error)
	ListBySport(ctx context.Context, sport SportType) ([]*Activity, error)

	// AddParticipant claims a roster slot for an accepted join request.
	AddParticipant(ctx context.Context, activityID string) (*Activity, error)
}

type service struct {
	repo  Repository
	hosts HostDirectory
	chats ChatCreator
	delay *latency.Simulator
}

func NewService(repo Repository, hosts HostDirectory, chats ChatCreator, delay *latency.Simulator) Service {
	return &service{
		repo:  repo,
		hosts: hosts,
		chats: chats,
		delay: delay,
	}
}

func (s *service) Create(ctx context.Context, hostID string, dto *CreateActivityDTO) (*Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(dto); err != nil {
		return nil, err
	}

	dateTime, err := time.Parse(time.RFC3339, dto.DateTime)
	if err != nil {
		return nil, ErrInvalidSchedule
	}

	hostName, err := s.hosts.DisplayName(ctx, hostID)
	if err != nil {
		return nil, ErrHostNotFound
	}

	now := time.Now()
	activity := &Activity{
		ID:                  uuid.NewString(),
		Title:               dto.Title,
		SportType:           SportType(dto.SportType),
		HostID:              hostID,
		HostName:            hostName,
		Location:            Location{Latitude: dto.Latitude, Longitude: dto.Longitude},
		DateTime:            dateTime,
		MaxParticipants:     dto.MaxParticipants,
		CurrentParticipants: 1, // host is automatically included
		SkillLevel:          SkillLevel(dto.SkillLevel),
		Status:              StatusOpen,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if dto.Description != "" {
		activity.Description = &dto.Description
	}
	if dto.Address != "" {
		activity.Location.Address = &dto.Address
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	if s.chats != nil {
		chatID, err := s.chats.EnsureForActivity(ctx, activity.ID, activity.Title, hostID)
		if err != nil {
			// The activity is usable without its chat; don't fail creation.
			log.Printf("Warning: failed to create chat for activity %s: %v", activity.ID, err)
		} else {
			activity.ChatID = &chatID
			if err := s.repo.SetChatID(ctx, activity.ID, chatID); err != nil {
				log.Printf("Warning: failed to link chat %s to activity %s: %v", chatID, activity.ID, err)
			}
		}
	}

	return activity, nil
}

func (s *service) Get(ctx context.Context, id string) (*Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUpcoming(ctx context.Context) ([]*Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListUpcoming(ctx, time.Now())
}

func (s *service) ListByHost(ctx context.Context, hostID string) ([]*Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListByHost(ctx, hostID)
}

func (s *service) ListBySport(ctx context.Context, sport SportType) ([]*Activity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListBySport(ctx, sport)
}

func (s *service) AddParticipant(ctx context.Context, activityID string) (*Activity, error) {
	return s.repo.AddParticipant(ctx, activityID)
}
