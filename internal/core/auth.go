package core

import (
	"context"
	"errors"
	"fmt"

	"chainledger/internal/repository"
	tokenIssuer "chainledger/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

// AuthService authenticates admin operators for the privileged endpoints.
type AuthService struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

func NewAuthService(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *AuthService {
	return &AuthService{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the provided username and password against the
// database and returns a signed JWT on success.
func (a *AuthService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies a bearer token presented to a privileged endpoint.
func (a *AuthService) ValidateToken(token string) error {
	if _, err := a.jwtIssuer.Validate(token); err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}
	return nil
}
