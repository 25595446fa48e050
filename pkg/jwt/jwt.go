package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"blog-school/backend/config"
)

var (
	// ErrTokenInvalid 签名错误、载荷损坏、算法不符与过期统一为同一种错误，
	// 调用方不得据此细分（与原系统对外行为一致）
	ErrTokenInvalid = errors.New("token 无效")
	// ErrNoSecret 签名密钥未配置
	ErrNoSecret = errors.New("JWT 密钥未配置")
)

// Claims 会话令牌载荷
// 字段名与原系统线上格式兼容：id / role / isAdmin
type Claims struct {
	UserID  int64  `json:"id"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
// 密钥通过构造函数显式注入，不依赖全局状态
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Ready 返回签名密钥是否已配置
func (m *Manager) Ready() bool {
	return len(m.secret) > 0
}

// GenerateToken 签发会话令牌，绝对有效期为签发时刻 + TokenTTL（2 小时）
func (m *Manager) GenerateToken(userID int64, role string, isAdmin bool) (string, error) {
	if !m.Ready() {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		IsAdmin: isAdmin,
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证令牌
// 任何解析失败（含过期）均返回 ErrTokenInvalid
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	if !m.Ready() {
		return nil, ErrNoSecret
	}

	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
