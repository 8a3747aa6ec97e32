package services

import (
	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"

	"gorm.io/gorm"
)

// ListTags returns the user's tags ordered by name descending. With
// assignedOnly the join against recipes can yield one row per recipe a tag
// is attached to, hence the DISTINCT.
func ListTags(userID uint, assignedOnly bool) ([]models.Tag, error) {
	q := config.DB.Model(&models.Tag{}).Where("tags.user_id = ?", userID)
	if assignedOnly {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
			Joins("JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.deleted_at IS NULL")
	}

	var tags []models.Tag
	err := q.Distinct("tags.*").
		Order("tags.name DESC, tags.id DESC").
		Find(&tags).Error
	return tags, err
}

func CreateTag(userID uint, name string) (*models.Tag, error) {
	tag := models.Tag{UserID: userID, Name: name}
	if err := config.DB.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func GetTag(userID, tagID uint) (*models.Tag, error) {
	var tag models.Tag
	err := config.DB.
		Where("id = ? AND user_id = ?", tagID, userID).
		First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func UpdateTag(userID, tagID uint, name string) (*models.Tag, error) {
	tag, err := GetTag(userID, tagID)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	if err := config.DB.Save(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func DeleteTag(userID, tagID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", tagID, userID).
		Delete(&models.Tag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
