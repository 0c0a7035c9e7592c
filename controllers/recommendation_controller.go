package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /tracker/recommendations
func GetRecommendations(c *gin.Context) {
	foodSvc := services.NewFoodService()
	recSvc := services.NewRecommendationService(foodSvc, services.Tracker)

	result, err := recSvc.Recommend(sessionID(c))
	if err != nil {
		respondTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
