// internal/requests/service.go

package requests

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/common/latency"
	"github.com/anisapp/anis-server/internal/users"
)

var (
	ErrRequestNotFound        = errors.New("join request not found")
	ErrUnauthorized           = errors.New("only the activity host can respond to this request")
	ErrCannotRequestOwn       = errors.New("cannot request to join your own activity")
	ErrRequestAlreadyResolved = errors.New("join request already resolved")
)

// ActivityDirectory is the slice of the activity service the workflow
// needs: lookups for validation and the roster slot claim on accept.
type ActivityDirectory interface {
	Get(ctx context.Context, id string) (*activities.Activity, error)
	ListByHost(ctx context.Context, hostID string) ([]*activities.Activity, error)
	AddParticipant(ctx context.Context, activityID string) (*activities.Activity, error)
}

// UserDirectory validates requesters and supplies their display data.
type UserDirectory interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

// ChatNotifier admits an accepted requester to the activity chat.
type ChatNotifier interface {
	AddParticipant(ctx context.Context, chatID, userID, userName string) error
}

type Service interface {
	// Send creates a pending request, or returns the existing one when
	// the pair already has an open request (idempotent submit).
	Send(ctx context.Context, activityID, requesterID string) (*JoinRequest, error)

	// ListForUser partitions the user's pending requests by role.
	ListForUser(ctx context.Context, userID string) (*Inbox, error)

	Accept(ctx context.Context, requestID, hostID string) (*JoinRequest, error)
	Decline(ctx context.Context, requestID, hostID string) (*JoinRequest, error)
	Cancel(ctx context.Context, requestID, requesterID string) (*JoinRequest, error)
}

type service struct {
	repo       Repository
	activities ActivityDirectory
	users      UserDirectory
	chats      ChatNotifier
	delay      *latency.Simulator
}

func NewService(repo Repository, activityDir ActivityDirectory, userDir UserDirectory, chats ChatNotifier, delay *latency.Simulator) Service {
	return &service{
		repo:       repo,
		activities: activityDir,
		users:      userDir,
		chats:      chats,
		delay:      delay,
	}
}

func (s *service) Send(ctx context.Context, activityID, requesterID string) (*JoinRequest, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	activity, err := s.activities.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.Get(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if activity.HostID == requesterID {
		return nil, ErrCannotRequestOwn
	}

	// Idempotent submit: a second send for the same pair returns the
	// open request instead of creating a duplicate.
	if existing, err := s.repo.FindPending(ctx, requesterID, activityID); err == nil {
		return existing, nil
	}

	req := &JoinRequest{
		ID:                  uuid.NewString(),
		RequesterUserID:     requester.ID,
		RequesterName:       requester.Name,
		RequesterAvatar:     requester.ProfileImageURL,
		SportType:           activity.SportType,
		TargetActivityID:    activity.ID,
		TargetActivityTitle: activity.Title,
		Status:              StatusPending,
		CreatedAt:           time.Now(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	RecordRequest(StatusPending)
	return req, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) (*Inbox, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	pending, err := s.repo.ListPendingByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}

	hosted, err := s.activities.ListByHost(ctx, userID)
	if err != nil {
		return nil, err
	}

	hostedIDs := make([]string, 0, len(hosted))
	for _, a := range hosted {
		hostedIDs = append(hostedIDs, a.ID)
	}

	incoming, err := s.repo.ListPendingByActivities(ctx, hostedIDs)
	if err != nil {
		return nil, err
	}

	inbox := &Inbox{
		Incoming: incoming,
		Pending:  pending,
	}
	if inbox.Incoming == nil {
		inbox.Incoming = []*JoinRequest{}
	}
	if inbox.Pending == nil {
		inbox.Pending = []*JoinRequest{}
	}
	return inbox, nil
}

func (s *service) Accept(ctx context.Context, requestID, hostID string) (*JoinRequest, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.Get(ctx, req.TargetActivityID)
	if err != nil {
		return nil, err
	}

	if activity.HostID != hostID {
		return nil, ErrUnauthorized
	}

	if req.Status.IsTerminal() {
		return nil, ErrRequestAlreadyResolved
	}

	// Claim the roster slot before flipping the request: a full
	// activity must never yield an accepted request.
	if _, err := s.activities.AddParticipant(ctx, activity.ID); err != nil {
		return nil, err
	}

	resolved, err := s.repo.Resolve(ctx, requestID, StatusAccepted)
	if err != nil {
		return nil, err
	}

	if s.chats != nil && activity.ChatID != nil {
		if err := s.chats.AddParticipant(ctx, *activity.ChatID, resolved.RequesterUserID, resolved.RequesterName); err != nil {
			// The acceptance stands even if the chat notice fails.
			log.Printf("Warning: failed to add %s to chat %s: %v", resolved.RequesterUserID, *activity.ChatID, err)
		}
	}

	RecordRequest(StatusAccepted)
	RecordResolutionTime("accept", time.Since(resolved.CreatedAt))
	return resolved, nil
}

func (s *service) Decline(ctx context.Context, requestID, hostID string) (*JoinRequest, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activities.Get(ctx, req.TargetActivityID)
	if err != nil {
		return nil, err
	}

	if activity.HostID != hostID {
		return nil, ErrUnauthorized
	}

	resolved, err := s.repo.Resolve(ctx, requestID, StatusDeclined)
	if err != nil {
		return nil, err
	}

	RecordRequest(StatusDeclined)
	RecordResolutionTime("decline", time.Since(resolved.CreatedAt))
	return resolved, nil
}

func (s *service) Cancel(ctx context.Context, requestID, requesterID string) (*JoinRequest, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.RequesterUserID != requesterID {
		return nil, ErrUnauthorized
	}

	resolved, err := s.repo.Resolve(ctx, requestID, StatusCancelled)
	if err != nil {
		return nil, err
	}

	RecordRequest(StatusCancelled)
	return resolved, nil
}
