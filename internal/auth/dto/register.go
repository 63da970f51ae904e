package dto

type RegisterInput struct {
	Email    string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone" validate:"required_without=Email,omitempty,min=10"`
	Password string `json:"password" validate:"required,min=6"`
}
