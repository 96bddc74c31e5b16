// internal/activities/models.go

package activities

import "time"

// SportType identifies the sport an activity is organized around.
type SportType string

const (
	SportPadel      SportType = "padel"
	SportTennis     SportType = "tennis"
	SportFootball   SportType = "football"
	SportBasketball SportType = "basketball"
	SportVolleyball SportType = "volleyball"
	SportYoga       SportType = "yoga"
	SportPilates    SportType = "pilates"
	SportSurfing    SportType = "surfing"
	SportCycling    SportType = "cycling"
	SportBowling    SportType = "bowling"
	SportRunning    SportType = "running"
	SportSwimming   SportType = "swimming"
	SportGolf       SportType = "golf"
	SportOther      SportType = "other"
)

// AllSports lists every supported sport type.
var AllSports = []SportType{
	SportPadel, SportTennis, SportFootball, SportBasketball,
	SportVolleyball, SportYoga, SportPilates, SportSurfing,
	SportCycling, SportBowling, SportRunning, SportSwimming,
	SportGolf, SportOther,
}

// IsValid reports whether the sport type is one of the supported values.
func (s SportType) IsValid() bool {
	for _, sport := range AllSports {
		if s == sport {
			return true
		}
	}
	return false
}

// SkillLevel is the expected proficiency for an activity.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Status describes the lifecycle of an activity.
type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Location is a point on the map, optionally with a human-readable address.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
}

// Activity is a proposed or scheduled sports meetup. The host is always
// counted in CurrentParticipants, so it starts at 1 and never drops below.
type Activity struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         *string    `json:"description,omitempty"`
	SportType           SportType  `json:"sport_type"`
	HostID              string     `json:"host_id"`
	HostName            string     `json:"host_name"`
	Location            Location   `json:"location"`
	DateTime            time.Time  `json:"date_time"`
	MaxParticipants     int        `json:"max_participants"`
	CurrentParticipants int        `json:"current_participants"`
	SkillLevel          SkillLevel `json:"skill_level"`
	Status              Status     `json:"status"`
	ChatID              *string    `json:"chat_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsFull reports whether the roster has no open slots left.
func (a *Activity) IsFull() bool {
	return a.CurrentParticipants >= a.MaxParticipants
}

// AvailableSlots returns how many participants can still join.
func (a *Activity) AvailableSlots() int {
	return a.MaxParticipants - a.CurrentParticipants
}

// IsUpcoming reports whether the activity starts after now.
func (a *Activity) IsUpcoming(now time.Time) bool {
	return a.DateTime.After(now)
}
