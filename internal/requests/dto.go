// internal/requests/dto.go
package requests

type SendRequestDTO struct {
	ActivityID string `json:"activity_id" validate:"required"`
}
