package services

import (
	"os"

	"github.com/google/uuid"

	"itinera/pkg/utils"
)

type AuthServiceInterface interface {
	Login(password string) (string, error)
}

// AuthService issues admin tokens against a single bcrypt hash from the
// environment. There are no user accounts; the admin pages are the only
// protected surface.
type AuthService struct {
	passwordHash string
}

func NewAuthService() AuthServiceInterface {
	return &AuthService{
		passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func (a *AuthService) Login(password string) (string, error) {
	if a.passwordHash == "" || password == "" {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(a.passwordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(uuid.New(), "admin")
	if err != nil {
		return "", err
	}
	return token, nil
}
