package app

import (
	"fmt"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenIssuer = "club-cal-service"

// TokenConfig configures the JWT manager.
type TokenConfig struct {
	SecretKey string
	Expiry    time.Duration
	Issuer    string
}

type TokenManager interface {
	Generate(uid int64, name, email string) (string, error)
	Parse(token string) (*UserEntity, error)
	Validate(token string) error
}

type tokenManager struct {
	config TokenConfig
}

func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = 7 * 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// UserEntity is the claim set stored in issued tokens.
type UserEntity struct {
	UID   int64  `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (t *tokenManager) signingKey() []byte {
	// machine-scoped salt so a leaked config key alone cannot forge tokens
	return []byte(t.config.SecretKey + "_" + util.GetMachineID())
}

func (t *tokenManager) Generate(uid int64, name, email string) (string, error) {
	now := time.Now()
	claims := &UserEntity{
		UID:   uid,
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   "user-token",
			ID:        fmt.Sprintf("%d", uid),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.signingKey())
}

func (t *tokenManager) Parse(token string) (*UserEntity, error) {
	claims := &UserEntity{}

	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (t *tokenManager) Validate(token string) error {
	_, err := t.Parse(token)
	return err
}

// GetUID returns the authenticated user's UID, or 0 for anonymous requests.
func GetUID(c *gin.Context) int64 {
	if v, exists := c.Get("user_token"); exists {
		if user, ok := v.(*UserEntity); ok {
			return user.UID
		}
	}
	return 0
}
