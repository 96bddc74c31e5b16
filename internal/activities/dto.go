// internal/activities/dto.go
package activities

// DTOs for API requests/responses

type CreateActivityDTO struct {
	Title           string  `json:"title" validate:"required,min=3,max=100"`
	Description     string  `json:"description,omitempty" validate:"omitempty,max=500"`
	SportType       string  `json:"sport_type" validate:"required,oneof=padel tennis football basketball volleyball yoga pilates surfing cycling bowling running swimming golf other"`
	Latitude        float64 `json:"latitude" validate:"latitude"`
	Longitude       float64 `json:"longitude" validate:"longitude"`
	Address         string  `json:"address,omitempty" validate:"omitempty,max=200"`
	DateTime        string  `json:"date_time" validate:"required"`
	MaxParticipants int     `json:"max_participants" validate:"required,min=2,max=100"`
	SkillLevel      string  `json:"skill_level" validate:"required,oneof=beginner intermediate advanced"`
}
