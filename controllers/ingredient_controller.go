package controllers

import (
	"net/http"

	"github.com/taraskarpenko/recipe-app-api/services"

	"github.com/gin-gonic/gin"
)

type IngredientInput struct {
	Name string `json:"name" binding:"required"`
}

func ListIngredients(c *gin.Context) {
	ingredients, err := services.ListIngredients(c.GetUint("userID"), assignedOnlyParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func CreateIngredient(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := services.CreateIngredient(c.GetUint("userID"), input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ingredient, err := services.GetIngredient(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func UpdateIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := services.UpdateIngredient(c.GetUint("userID"), id, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func DeleteIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteIngredient(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
