package api

// PostRequest 建立與編輯文章共用的表單
// swagger:model api.PostRequest
type PostRequest struct {
	Title    string `form:"title" validate:"required,max=250" example:"The Life of Cactus"`
	Subtitle string `form:"subtitle" validate:"required,max=250" example:"Who knew that cacti lived such interesting lives."`
	Body     string `form:"body" validate:"required" example:"<p>Nori grape silver beet broccoli kombu beet greens fava bean potato quandong celery.</p>"`
	ImageURL string `form:"img_url" validate:"required,url,max=250" example:"https://images.unsplash.com/photo-1530482054429-cc491f61333b"`
}
