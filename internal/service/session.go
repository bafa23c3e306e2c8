package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blog/internal/access"
	"blog/internal/cache"
	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var (
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	timeNow         = time.Now
	newSessionID    = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
	getUserByID     = store.GetUserByID
)

// SessionData 存於 Redis 的 session 內容；角色只在 Start 時決定一次
type SessionData struct {
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
}

// SessionManager 管理登入 session：資料放在 Redis，cookie 中只有簽章過的 session id
type SessionManager struct {
	cache  cache.Cache
	db     database.DB
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(c cache.Cache, db database.DB, secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{cache: c, db: db, secret: []byte(secret), ttl: ttl}
}

// TTL 回傳 session 有效期，供設定 cookie 使用
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

func sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}

// Start 建立新 session 並回傳 token。token 僅包含 session id 與到期時間。
func (m *SessionManager) Start(ctx context.Context, user model.User) (string, error) {
	sid := newSessionID()
	data, err := jsonMarshal(SessionData{UserID: user.ID, Role: model.RoleFor(user.ID)})
	if err != nil {
		return "", fmt.Errorf("Start: %w", err)
	}
	if err := m.cache.Set(ctx, sessionKey(sid), data, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("Start: %w", err)
	}

	now := timeNow()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("Start: %w", err)
	}
	return token, nil
}

// sessionID 驗證 token 簽章與期限並取出 session id
func (m *SessionManager) sessionID(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := parseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.ID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.ID, nil
}

// Resolve 將 token 解析為目前的使用者。
// 無 token、token 無效、session 已結束或使用者不存在時回傳 (nil, nil)，代表匿名。
func (m *SessionManager) Resolve(ctx context.Context, token string) (*access.Identity, error) {
	if token == "" {
		return nil, nil
	}
	sid, err := m.sessionID(token)
	if err != nil {
		return nil, nil
	}

	raw, err := m.cache.Get(ctx, sessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}

	var data SessionData
	if err := jsonUnmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}

	user, err := getUserByID(ctx, m.db, data.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	return &access.Identity{User: *user, Role: data.Role}, nil
}

// End 結束 session；無法解析的 token 視為已結束
func (m *SessionManager) End(ctx context.Context, token string) error {
	sid, err := m.sessionID(token)
	if err != nil {
		return nil
	}
	if err := m.cache.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("End: %w", err)
	}
	return nil
}
