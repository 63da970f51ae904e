package dto

type CreateCounterInput struct {
	ID         string `json:"id" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=1,max=50"`
	Count      int    `json:"count"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
	Type       string `json:"type" validate:"omitempty,oneof=PERSONAL SHARED"`
	InviteCode string `json:"inviteCode"`
}

type UpdateCounterInput struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=50"`
	Count *int    `json:"count"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
	Type  *string `json:"type" validate:"omitempty,oneof=PERSONAL SHARED"`
}

type IncrementCounterInput struct {
	Amount *int `json:"amount" validate:"required"`
}

type JoinCounterInput struct {
	InviteCode string `json:"inviteCode" validate:"required"`
}
