package controllers

import (
	"net/http"

	"github.com/taraskarpenko/recipe-app-api/services"

	"github.com/gin-gonic/gin"
)

type TagInput struct {
	Name string `json:"name" binding:"required"`
}

func ListTags(c *gin.Context) {
	tags, err := services.ListTags(c.GetUint("userID"), assignedOnlyParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func CreateTag(c *gin.Context) {
	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := services.CreateTag(c.GetUint("userID"), input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func GetTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tag, err := services.GetTag(c.GetUint("userID"), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func UpdateTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := services.UpdateTag(c.GetUint("userID"), id, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.DeleteTag(c.GetUint("userID"), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
