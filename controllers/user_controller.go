package controllers

import (
	"net/http"

	"github.com/taraskarpenko/recipe-app-api/services"

	"github.com/gin-gonic/gin"
)

func GetMe(c *gin.Context) {
	user, err := services.GetUser(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateMe(c *gin.Context) {
	var input services.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUser(c.GetUint("userID"), input)
	if err != nil {
		if err == services.ErrEmailRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
