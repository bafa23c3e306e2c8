package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料，或操作引用了不存在的 id
	ErrNotFound = errors.New("not found")
	// ErrConflict 違反唯一性限制（重複的 email 或文章標題）
	ErrConflict = errors.New("conflict")
)

// Postgres SQLSTATE
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translate 將 pgx 錯誤轉為 store 的錯誤分類，其餘錯誤原樣回傳
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return ErrConflict
		case foreignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}
