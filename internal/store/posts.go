package store

import (
	"context"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"

	"github.com/jackc/pgx/v5"
)

const selectPost = `SELECT p.id, p.author_id, p.title, p.subtitle, p.body, p.img_url, p.date, u.name
	 FROM blog_posts p
	 JOIN users u ON u.id = p.author_id`

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Subtitle,
		&p.Body,
		&p.ImageURL,
		&p.Date,
		&p.AuthorName,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPosts 依建立順序回傳所有文章
func ListPosts(ctx context.Context, db database.DB) ([]model.Post, error) {
	rows, err := db.Query(ctx, selectPost+` ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPosts: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

func GetPost(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	p, err := scanPost(db.QueryRow(ctx, selectPost+` WHERE p.id = $1`, postID))
	if err != nil {
		return nil, fmt.Errorf("GetPost: %w", translate(err))
	}
	return p, nil
}

// CreatePost 新增文章；標題重複回傳 ErrConflict，作者不存在回傳 ErrNotFound
func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO blog_posts (author_id, title, subtitle, body, img_url, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.AuthorID,
		p.Title,
		p.Subtitle,
		p.Body,
		p.ImageURL,
		p.Date,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", translate(err))
	}
	return p, nil
}

// UpdatePost 只更新內容欄位，author_id 與 date 保持不變
func UpdatePost(ctx context.Context, db database.DB, p *model.Post) error {
	tag, err := db.Exec(ctx,
		`UPDATE blog_posts
		 SET title = $1, subtitle = $2, body = $3, img_url = $4
		 WHERE id = $5`,
		p.Title,
		p.Subtitle,
		p.Body,
		p.ImageURL,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdatePost: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdatePost: %w", ErrNotFound)
	}
	return nil
}

// DeletePost 刪除文章，其留言由外鍵 ON DELETE CASCADE 一併移除
func DeletePost(ctx context.Context, db database.DB, postID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("DeletePost: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeletePost: %w", ErrNotFound)
	}
	return nil
}
