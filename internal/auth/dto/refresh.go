package dto

// Web clients carry the refresh token in a cookie; native clients send it
// in the body. The handler resolves the cookie before falling back here.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"omitempty,uuid"`
}
