// File: internal/service/password.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	saltLength = 16

	// legacyIterations 為舊版雜湊字串省略迭代次數時的預設值
	legacyIterations = 260000
)

// pbkdf2Iterations 新產生雜湊所用的迭代次數
var pbkdf2Iterations = 600000

var hashFuncs = map[string]func() hash.Hash{
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// HashPassword 以 PBKDF2-HMAC-SHA256 與隨機鹽產生雜湊，
// 格式為 "pbkdf2:sha256:<iterations>$<salt>$<hex digest>"。
func HashPassword(password string) (string, error) {
	salt, err := genSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("HashPassword: %w", err)
	}
	digest := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, salt, hex.EncodeToString(digest)), nil
}

// VerifyPassword 依雜湊字串內嵌的參數重新計算並以常數時間比對。
// 雜湊格式錯誤時回傳 false。
func VerifyPassword(password, encoded string) bool {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 || parts[1] == "" {
		return false
	}
	method, salt, want := parts[0], parts[1], parts[2]

	params := strings.Split(method, ":")
	if len(params) < 2 || len(params) > 3 || params[0] != "pbkdf2" {
		return false
	}
	newHash, ok := hashFuncs[params[1]]
	if !ok {
		return false
	}
	iterations := legacyIterations
	if len(params) == 3 {
		n, err := strconv.Atoi(params[2])
		if err != nil || n <= 0 {
			return false
		}
		iterations = n
	}

	wantBytes, err := hex.DecodeString(want)
	if err != nil || len(wantBytes) != newHash().Size() {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(wantBytes), newHash)
	return subtle.ConstantTimeCompare(got, wantBytes) == 1
}

func genSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(buf), nil
}

var randRead = rand.Read
