package services

import (
	"errors"

	"github.com/taraskarpenko/recipe-app-api/config"
	"github.com/taraskarpenko/recipe-app-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNameRequired = errors.New("name is required")

// NamedInput is a name-only tag or ingredient reference supplied inline
// with a recipe payload.
type NamedInput struct {
	Name string `json:"name" binding:"required"`
}

type RecipeCreateInput struct {
	Title       string          `json:"title" binding:"required"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Tags        []NamedInput    `json:"tags" binding:"omitempty,dive"`
	Ingredients []NamedInput    `json:"ingredients" binding:"omitempty,dive"`
}

// RecipeUpdateInput uses pointers so an omitted field can be told apart
// from a zero value; a nil Tags/Ingredients list leaves the relation
// untouched, an empty one clears it.
type RecipeUpdateInput struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link"`
	Tags        *[]NamedInput    `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]NamedInput    `json:"ingredients" binding:"omitempty,dive"`
}

// RecipeSummary is the list representation; description and image are
// detail-only.
type RecipeSummary struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       decimal.Decimal     `json:"price"`
	Link        string              `json:"link"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// ListRecipes returns the user's recipes, newest first. Non-empty tagIDs /
// ingredientIDs narrow the result to recipes holding at least one of the
// given tags and at least one of the given ingredients respectively; the
// joins can multiply rows, hence the DISTINCT.
func ListRecipes(userID uint, tagIDs, ingredientIDs []uint) ([]RecipeSummary, error) {
	q := config.DB.Model(&models.Recipe{}).Where("recipes.user_id = ?", userID)
	if len(tagIDs) > 0 {
		q = q.Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", tagIDs)
	}
	if len(ingredientIDs) > 0 {
		q = q.Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs)
	}

	var recipes []models.Recipe
	err := q.Distinct("recipes.*").
		Preload("Tags").
		Preload("Ingredients").
		Order("recipes.id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		// nil relation slices marshal as null; clients expect [].
		if r.Tags == nil {
			r.Tags = []models.Tag{}
		}
		if r.Ingredients == nil {
			r.Ingredients = []models.Ingredient{}
		}
		summaries = append(summaries, RecipeSummary{
			ID:          r.ID,
			Title:       r.Title,
			TimeMinutes: r.TimeMinutes,
			Price:       r.Price,
			Link:        r.Link,
			Tags:        r.Tags,
			Ingredients: r.Ingredients,
		})
	}
	return summaries, nil
}

func GetRecipe(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Tags").
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	if recipe.Tags == nil {
		recipe.Tags = []models.Tag{}
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.Ingredient{}
	}
	return &recipe, nil
}

func CreateRecipe(userID uint, in RecipeCreateInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price,
		Description: in.Description,
		Link:        in.Link,
		UserID:      userID,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}

	if len(in.Tags) > 0 {
		tags, err := resolveTags(userID, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := config.DB.Model(&recipe).Association("Tags").Append(&tags); err != nil {
			return nil, err
		}
	}
	if len(in.Ingredients) > 0 {
		ingredients, err := resolveIngredients(userID, in.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := config.DB.Model(&recipe).Association("Ingredients").Append(&ingredients); err != nil {
			return nil, err
		}
	}

	return GetRecipe(userID, recipe.ID)
}

// UpdateRecipe applies patch semantics: only non-nil fields change. A
// supplied Tags/Ingredients list fully replaces that relation.
func UpdateRecipe(userID, recipeID uint, in RecipeUpdateInput) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		recipe.Title = *in.Title
	}
	if in.TimeMinutes != nil {
		recipe.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		recipe.Price = *in.Price
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Link != nil {
		recipe.Link = *in.Link
	}
	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}

	if in.Tags != nil {
		tags, err := resolveTags(userID, *in.Tags)
		if err != nil {
			return nil, err
		}
		if err := replaceAssociation(&recipe, "Tags", &tags, len(tags)); err != nil {
			return nil, err
		}
	}
	if in.Ingredients != nil {
		ingredients, err := resolveIngredients(userID, *in.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := replaceAssociation(&recipe, "Ingredients", &ingredients, len(ingredients)); err != nil {
			return nil, err
		}
	}

	return GetRecipe(userID, recipe.ID)
}

func DeleteRecipe(userID, recipeID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetRecipeImage records the uploaded image URL on an owned recipe.
func SetRecipeImage(userID, recipeID uint, imageURL string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}

	recipe.ImageURL = imageURL
	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return GetRecipe(userID, recipe.ID)
}

func replaceAssociation(recipe *models.Recipe, name string, values interface{}, n int) error {
	assoc := config.DB.Model(recipe).Association(name)
	if n == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

// resolveTags runs get-or-create per name against the user's own tags;
// matching is case-sensitive. Not guarded against concurrent creation of
// the same name. Empty names are rejected here as well as at binding:
// a zero value in a struct condition would be dropped from the query and
// match by user_id alone.
func resolveTags(userID uint, inputs []NamedInput) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, ErrNameRequired
		}
		var tag models.Tag
		err := config.DB.
			Where("user_id = ? AND name = ?", userID, in.Name).
			Attrs(models.Tag{UserID: userID, Name: in.Name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func resolveIngredients(userID uint, inputs []NamedInput) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, ErrNameRequired
		}
		var ingredient models.Ingredient
		err := config.DB.
			Where("user_id = ? AND name = ?", userID, in.Name).
			Attrs(models.Ingredient{UserID: userID, Name: in.Name}).
			FirstOrCreate(&ingredient).Error
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}
