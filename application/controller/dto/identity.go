package dto

type CreateIdentityDTO struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=100"`
}
