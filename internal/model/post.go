// File: internal/model/post.go
package model

// DateLayout 文章建立日期的顯示格式，例如 "August 24, 2026"
const DateLayout = "January 02, 2006"

type Post struct {
	ID       int    `db:"id" json:"id"`
	AuthorID int    `db:"author_id" json:"author_id"`
	Title    string `db:"title" json:"title"`
	Subtitle string `db:"subtitle" json:"subtitle"`
	Body     string `db:"body" json:"body"`
	ImageURL string `db:"img_url" json:"img_url"`
	Date     string `db:"date" json:"date"`

	// AuthorName 由 users 表 JOIN 而來，不存於 blog_posts
	AuthorName string `db:"-" json:"author_name"`
}
