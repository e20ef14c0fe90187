package auth

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service errors.
var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrNotConfigured      = errors.New("token auth is not configured")
)

// TokenResponse is the response body for POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in"` // Access token TTL in seconds
}

// Service exchanges the shared editor password for access tokens.
type Service struct {
	passwordHash []byte
	tokens       *TokenService
	logger       *zap.Logger
}

// NewService creates an auth Service. An empty passwordHash disables auth:
// Login refuses to mint tokens and the middleware passes writes through.
func NewService(passwordHash string, tokens *TokenService, logger *zap.Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
		logger:       logger,
	}
}

// Enabled reports whether a password hash is configured.
func (s *Service) Enabled() bool {
	return len(s.passwordHash) > 0
}

// Tokens returns the token service for middleware use.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Login checks the password against the configured bcrypt hash and
// returns a fresh token response.
func (s *Service) Login(password string) (*TokenResponse, error) {
	if !s.Enabled() {
		return nil, ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, err
	}

	s.logger.Info("editor token issued")
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
	}, nil
}
