// internal/requests/models.go

package requests

import (
	"time"

	"github.com/anisapp/anis-server/internal/activities"
)

// Status is the canonical join-request state. The mobile client showed
// the same pending request as "incoming" to the host and "pending" to
// the requester; that relabeling happens at query time (see
// ListForUser) and is never stored.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined || s == StatusCancelled
}

// JoinRequest is a requester's ask to be admitted into an activity's
// roster. The sport type and activity title are snapshotted at creation
// time so the inbox renders without extra lookups.
type JoinRequest struct {
	ID                  string               `json:"id"`
	RequesterUserID     string               `json:"requester_user_id"`
	RequesterName       string               `json:"requester_name"`
	RequesterAvatar     *string              `json:"requester_avatar,omitempty"`
	SportType           activities.SportType `json:"sport_type"`
	TargetActivityID    string               `json:"target_activity_id"`
	TargetActivityTitle string               `json:"target_activity_title"`
	Status              Status               `json:"status"`
	CreatedAt           time.Time            `json:"created_at"`
	RespondedAt         *time.Time           `json:"responded_at,omitempty"`
}

// Inbox partitions a user's pending requests by role: incoming ones
// they must act on as host, pending ones they are waiting on as
// requester.
type Inbox struct {
	Incoming []*JoinRequest `json:"incoming"`
	Pending  []*JoinRequest `json:"pending"`
}
