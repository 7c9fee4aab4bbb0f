package dto

// UpdateProfileRequest represents the request body for a profile update.
// A null avatar_url keeps the current avatar.
type UpdateProfileRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	AvatarURL *string `json:"avatar_url"`
}

// SetCurrencyRequest represents the request body for changing the display currency.
type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,oneof=BRL USD EUR"`
}
