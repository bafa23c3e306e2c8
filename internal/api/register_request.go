package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `form:"email" validate:"required,email,max=100" example:"alice@example.com"`
	Password string `form:"password" validate:"required,max=100" example:"Secret123!"`
	Name     string `form:"name" validate:"required,max=100" example:"Alice"`
}
