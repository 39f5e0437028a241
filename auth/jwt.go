package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Xushengqwer/blog_service/models/enums"
)

// Claims 访问令牌的载荷
// - 只携带用户ID与角色两个业务字段，其余信息按需回源查询，
//   避免令牌里的快照与数据库脱节
type Claims struct {
	UserID string         `json:"id"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager 负责访问令牌的签发与校验，HS256 对称签名
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager 创建令牌管理器
// - ttl 为零值时默认 7 天，与前端的会话预期保持一致
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue 为指定用户签发令牌
func (m *TokenManager) Issue(userID string, role enums.UserRole) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("签发令牌失败: %w", err)
	}
	return signed, nil
}

// Parse 校验令牌签名与有效期，返回载荷
// - 显式限定 HS256，防止算法混淆类攻击
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("解析令牌失败: %w", err)
	}
	return &claims, nil
}
