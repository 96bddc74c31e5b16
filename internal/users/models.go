// internal/users/models.go

package users

import (
	"time"

	"github.com/anisapp/anis-server/internal/activities"
)

// SocialLinks holds the optional social handles shown on a profile.
type SocialLinks struct {
	Instagram *string `json:"instagram,omitempty"`
	X         *string `json:"x,omitempty"`
	Snapchat  *string `json:"snapchat,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
	Website   *string `json:"website,omitempty"`
}

// User is a profile record. Every update replaces the whole record with
// a copy differing only in the targeted field group; the ID never
// changes after creation.
type User struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Age             *int                   `json:"age,omitempty"`
	Interests       []activities.SportType `json:"interests"`
	ProfileImageURL *string                `json:"profile_image_url,omitempty"`
	Bio             *string                `json:"bio,omitempty"`
	Social          SocialLinks            `json:"social"`
	CreatedAt       time.Time              `json:"created_at"`
	LastActiveAt    time.Time              `json:"last_active_at"`
}
