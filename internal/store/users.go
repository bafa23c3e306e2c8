package store

import (
	"context"
	"fmt"
	"strings"

	"blog/internal/database"
	"blog/internal/model"
)

// NormalizeEmail 去除空白並轉小寫，email 唯一性以此形式判定
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser 新增使用者；email 重複時回傳 ErrConflict，且不會寫入任何資料
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	email := NormalizeEmail(u.Email)
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password, name)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		email,
		u.PasswordHash,
		u.Name,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", translate(err))
	}
	// 寫入成功才回填
	u.ID = id
	u.Email = email
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password, name
		 FROM users WHERE email = $1`,
		NormalizeEmail(email),
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", translate(err))
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password, name
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", translate(err))
	}
	return u, nil
}
