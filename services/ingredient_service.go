package services

import (
	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"

	"gorm.io/gorm"
)

func ListIngredients(userID uint, assignedOnly bool) ([]models.Ingredient, error) {
	q := config.DB.Model(&models.Ingredient{}).Where("ingredients.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.deleted_at IS NULL")
	}

	var ingredients []models.Ingredient
	err := q.Distinct("ingredients.*").
		Order("ingredients.name DESC, ingredients.id DESC").
		Find(&ingredients).Error
	return ingredients, err
}

func CreateIngredient(userID uint, name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{UserID: userID, Name: name}
	if err := config.DB.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func GetIngredient(userID, ingredientID uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := config.DB.
		Where("id = ? AND user_id = ?", ingredientID, userID).
		First(&ingredient).Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func UpdateIngredient(userID, ingredientID uint, name string) (*models.Ingredient, error) {
	ingredient, err := GetIngredient(userID, ingredientID)
	if err != nil {
		return nil, err
	}

	ingredient.Name = name
	if err := config.DB.Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func DeleteIngredient(userID, ingredientID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", ingredientID, userID).
		Delete(&models.Ingredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
