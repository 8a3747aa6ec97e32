package services

import (
	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"
	"github.com/taraskarpenko/recipe-app-api/utils"
)

type UserUpdateInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(userID uint, in UserUpdateInput) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		if *in.Email == "" {
			return nil, ErrEmailRequired
		}
		user.Email = NormalizeEmail(*in.Email)
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
