// Package access 依請求的身分判斷可執行的操作，結果只取決於傳入的身分
package access

import (
	"errors"

	"blog/internal/model"
)

var (
	ErrUnauthorized = errors.New("sign-in required")
	ErrForbidden    = errors.New("admin privileges required")
)

// Identity 請求的登入者，Role 於 session 開始時決定
type Identity struct {
	User model.User
	Role model.Role
}

// State 存取狀態：匿名、已登入、管理員
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// StateOf 回傳身分對應的狀態，nil 為匿名
func StateOf(id *Identity) State {
	switch {
	case id == nil:
		return StateAnonymous
	case id.Role == model.RoleAdmin:
		return StateAdmin
	default:
		return StateAuthenticated
	}
}

// RequireAuthenticated 留言前檢查
func RequireAuthenticated(id *Identity) error {
	if StateOf(id) == StateAnonymous {
		return ErrUnauthorized
	}
	return nil
}

// RequireAdmin 新增、編輯、刪除文章前檢查；匿名同樣回傳 ErrForbidden，不導向登入
func RequireAdmin(id *Identity) error {
	if StateOf(id) != StateAdmin {
		return ErrForbidden
	}
	return nil
}
