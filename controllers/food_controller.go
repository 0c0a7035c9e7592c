package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?query=apple
func SearchFoods(c *gin.Context) {
	foodSvc := services.NewFoodService()
	out, err := foodSvc.SearchByPrefix(c.Query("query"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}
