package services

import (
	"errors"
	"strings"

	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"
	"github.com/taraskarpenko/recipe-app-api/utils"
)

var ErrEmailRequired = errors.New("users must have an email address")

// NormalizeEmail lowercases the domain part only; the local part is
// case-sensitive per RFC 5321.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func createUser(email, password, name string, staff, superuser bool) (*models.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       NormalizeEmail(email),
		Password:    hashedPassword,
		Name:        name,
		IsStaff:     staff,
		IsSuperuser: superuser,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func RegisterUser(email, password, name string) (*models.User, error) {
	return createUser(email, password, name, false, false)
}

// CreateSuperuser is used from ops tooling, not exposed over HTTP.
func CreateSuperuser(email, password string) (*models.User, error) {
	return createUser(email, password, "", true, true)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	user, err := FindUserByEmail(NormalizeEmail(email))
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
