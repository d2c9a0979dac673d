package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"
)

const (
	sessionSubject  = "nutrition-ai"
	DefaultTokenTTL = 72 * time.Hour
)

// AuthService checks the single shared access password and, when a signing
// secret is configured, issues a bearer token for later requests.
type AuthService struct {
	password string
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(password, jwtSecret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{password: password, secret: []byte(jwtSecret), ttl: ttl}
}

type AuthResult struct {
	Authenticated bool       `json:"authenticated"`
	Timestamp     time.Time  `json:"timestamp"`
	Token         string     `json:"token,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

func (s *AuthService) Validate(password string) (*AuthResult, error) {
	if s.password == "" {
		return nil, ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, ErrInvalidPassword
	}

	now := time.Now().UTC()
	res := &AuthResult{Authenticated: true, Timestamp: now}
	if len(s.secret) > 0 {
		token, err := utils.GenerateJWT(s.secret, sessionSubject, s.ttl)
		if err != nil {
			return nil, fmt.Errorf("sign session token: %w", err)
		}
		res.Token = token
		exp := now.Add(s.ttl)
		res.ExpiresAt = &exp
	}
	return res, nil
}

// VerifyToken accepts tokens issued by Validate.
func (s *AuthService) VerifyToken(token string) error {
	if len(s.secret) == 0 {
		return ErrAuthNotConfigured
	}
	sub, err := utils.ParseJWT(s.secret, token)
	if err != nil {
		return err
	}
	if sub != sessionSubject {
		return utils.ErrInvalidToken
	}
	return nil
}
