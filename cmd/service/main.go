// File: cmd/service/main.go
// @title        Blog
// @version      1.0
// @description  多人部落格：註冊登入、文章與留言，文章維護限管理員
// @host         localhost:8080
// @BasePath     /
package main

import (
	"log"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate 呼叫底層 validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
