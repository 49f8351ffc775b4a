package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/domain"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Login struct {
	users  user.Repository
	tokens *TokenIssuer
}

func NewLogin(users user.Repository, tokens *TokenIssuer) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := uc.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}
