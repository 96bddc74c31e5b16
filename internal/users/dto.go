// internal/users/dto.go
package users

// DTOs for API requests/responses

type CreateUserDTO struct {
	Name      string   `json:"name" validate:"required,min=2,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Age       *int     `json:"age,omitempty" validate:"omitempty,min=13,max=120"`
	Interests []string `json:"interests,omitempty" validate:"omitempty,dive,oneof=padel tennis football basketball volleyball yoga pilates surfing cycling bowling running swimming golf other"`
	Bio       string   `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type UpdateInterestsDTO struct {
	Interests []string `json:"interests" validate:"required,dive,oneof=padel tennis football basketball volleyball yoga pilates surfing cycling bowling running swimming golf other"`
}

type UpdateBioDTO struct {
	Bio string `json:"bio" validate:"max=500"`
}

type UpdateNameDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSocialLinksDTO struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,max=100"`
	X         string `json:"x,omitempty" validate:"omitempty,max=100"`
	Snapchat  string `json:"snapchat,omitempty" validate:"omitempty,max=100"`
	TikTok    string `json:"tiktok,omitempty" validate:"omitempty,max=100"`
	Website   string `json:"website,omitempty" validate:"omitempty,url,max=200"`
}
