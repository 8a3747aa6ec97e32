package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/taraskarpenko/recipe-app-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// parseIDList turns "1,2,3" into IDs. A malformed token is a client error,
// not something to drop silently.
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func ListRecipes(c *gin.Context) {
	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tags must be a comma-separated list of ids"})
		return
	}
	ingredientIDs, err := parseIDList(c.Query("ingredients"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ingredients must be a comma-separated list of ids"})
		return
	}

	recipes, err := services.ListRecipes(c.GetUint("userID"), tagIDs, ingredientIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func CreateRecipe(c *gin.Context) {
	var input services.RecipeCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.CreateRecipe(c.GetUint("userID"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := services.GetRecipe(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// PUT and PATCH share the handler; both replace only the supplied fields
// and a supplied tags/ingredients list replaces the whole relation.
type FullRecipeInput struct {
	Title       string                 `json:"title" binding:"required"`
	TimeMinutes int                    `json:"time_minutes" binding:"required"`
	Price       decimal.Decimal        `json:"price" binding:"required"`
	Description string                 `json:"description"`
	Link        string                 `json:"link"`
	Tags        *[]services.NamedInput `json:"tags" binding:"omitempty,dive"`
	Ingredients *[]services.NamedInput `json:"ingredients" binding:"omitempty,dive"`
}

func UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input FullRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := services.RecipeUpdateInput{
		Title:       &input.Title,
		TimeMinutes: &input.TimeMinutes,
		Price:       &input.Price,
		Description: &input.Description,
		Link:        &input.Link,
		Tags:        input.Tags,
		Ingredients: input.Ingredients,
	}

	recipe, err := services.UpdateRecipe(c.GetUint("userID"), id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func PatchRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.RecipeUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.UpdateRecipe(c.GetUint("userID"), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteRecipe(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
