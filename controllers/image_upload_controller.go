package controllers

import (
	"net/http"

	"github.com/taraskarpenko/recipe-app-api/services"
	"github.com/taraskarpenko/recipe-app-api/utils"

	"github.com/gin-gonic/gin"
)

type RecipeImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadRecipeImage stores a base64 image on S3 and records its URL on the
// recipe. Ownership is checked before touching S3.
func UploadRecipeImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID := c.GetUint("userID")

	var input RecipeImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if _, err := services.GetRecipe(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.ImageBase64, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	recipe, err := services.SetRecipeImage(userID, id, url)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
