package store

import (
	"context"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"
)

// CreateComment 新增留言；文章或作者不存在時回傳 ErrNotFound
func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (text, author_id, post_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.Text,
		c.AuthorID,
		c.PostID,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", translate(err))
	}
	return c, nil
}

// ListCommentsByPost 依建立順序回傳文章的留言，並帶出作者名稱與 email
func ListCommentsByPost(ctx context.Context, db database.DB, postID int) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.text, c.author_id, c.post_id, u.name, u.email
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = $1
		 ORDER BY c.id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.AuthorID, &c.PostID, &c.AuthorName, &c.AuthorEmail); err != nil {
			return nil, fmt.Errorf("ListCommentsByPost: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	return comments, nil
}
