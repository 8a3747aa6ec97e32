package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/taraskarpenko/recipe-app-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError maps service failures to HTTP. A row owned by another
// user is indistinguishable from a missing one, always a 404.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if errors.Is(err, services.ErrNameRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// assignedOnlyParam mirrors the loose boolean coercion of the query flag:
// only "1" and "true" count.
func assignedOnlyParam(c *gin.Context) bool {
	v := c.Query("assigned_only")
	return v == "1" || v == "true"
}
