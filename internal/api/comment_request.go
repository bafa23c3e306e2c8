package api

// swagger:model api.CommentRequest
type CommentRequest struct {
	Text string `form:"text" validate:"required,max=250" example:"Nice post!"`
}
