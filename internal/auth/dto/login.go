package dto

type LoginInput struct {
	Email      string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone      string `json:"phone" validate:"required_without=Email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}
