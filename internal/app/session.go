package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/davidmrt/promptforge/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	UserId string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

const sessionTTL = 30 * 24 * time.Hour

func (a App) issueSession(user *domain.User) (string, error) {
	claims := sessionClaims{
		UserId: user.Id,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(a.Config.SessionSecret))
}

// resolveSession returns the caller identity carried by the Authorization
// bearer token, or nil for unauthenticated callers. A malformed, expired
// or mis-signed token resolves to nil rather than an error; protected
// operations treat both the same way.
func (a App) resolveSession(r *http.Request) *domain.Session {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")

	parsed, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(a.Config.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !parsed.Valid {
		return nil
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil
	}

	return &domain.Session{UserId: claims.UserId, Email: claims.Email}
}
