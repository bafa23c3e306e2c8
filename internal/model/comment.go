// File: internal/model/comment.go
package model

type Comment struct {
	ID       int    `db:"id" json:"id"`
	Text     string `db:"text" json:"text"`
	AuthorID int    `db:"author_id" json:"author_id"`
	PostID   int    `db:"post_id" json:"post_id"`

	// 以下欄位由 users 表 JOIN 而來
	AuthorName  string `db:"-" json:"author_name"`
	AuthorEmail string `db:"-" json:"-"`
}
