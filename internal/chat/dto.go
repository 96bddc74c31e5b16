// internal/chat/dto.go
package chat

type SendMessageDTO struct {
	Content     string `json:"content" validate:"required,min=1,max=1000"`
	MessageType string `json:"message_type,omitempty" validate:"omitempty,oneof=text image"`
}
