package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/umenyi-bryan/Hackarena/internal/store"
)

const (
	tokenIssuer = "hackarena"
	tokenTTL    = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid session token")

type Service struct {
	store     *store.Store
	jwtSecret []byte
	now       func() time.Time
}

type SessionClaims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

func NewService(s *store.Store, secret string) *Service {
	return &Service{
		store:     s,
		jwtSecret: []byte(secret),
		now:       time.Now,
	}
}

// QuickLogin registers an anonymous player and signs a session token for it.
func (s *Service) QuickLogin() (*QuickLoginResponse, error) {
	u := s.store.RegisterAnonymousUser()

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		SessionID: u.ID,
		Username:  u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})

	ss, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &QuickLoginResponse{
		Status:    "success",
		Message:   "Logged in anonymously",
		SessionID: u.ID,
		Username:  u.Username,
		Points:    u.Points,
		Rank:      u.Rank,
		Token:     ss,
	}, nil
}

// ValidateToken returns the session id and username carried by a token.
func (s *Service) ValidateToken(tokenString string) (string, string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims.SessionID, claims.Username, nil
}
