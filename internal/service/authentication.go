// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"blog/internal/model"
)

var ErrInvalidPassword = errors.New("invalid password")

// AuthenticateUser 比對使用者的密碼雜湊與明文密碼
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if !VerifyPassword(password, user.PasswordHash) {
		return ErrInvalidPassword
	}
	return nil
}
