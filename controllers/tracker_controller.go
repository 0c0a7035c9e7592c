package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionID reads the caller's session from the X-Session-ID header;
// headerless callers share the default session, which keeps the
// single-user flow of a lone client working with no setup.
func sessionID(c *gin.Context) string {
	return c.GetHeader("X-Session-ID")
}

// POST /tracker/predict
func Predict(c *gin.Context) {
	var input services.PredictInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := sessionID(c)
	if sid == "" && c.Query("new_session") == "true" {
		sid = uuid.NewString()
	}

	result, err := services.Tracker.Initialize(sid, input)
	if err != nil {
		respondTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /tracker/meals
func LogMeal(c *gin.Context) {
	var body struct {
		MealType  string               `json:"meal_type" binding:"required"`
		Nutrients models.MealNutrients `json:"nutrients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.Tracker.LogMeal(sessionID(c), body.MealType, body.Nutrients)
	if err != nil {
		respondTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /tracker
func GetTracker(c *gin.Context) {
	budget, err := services.Tracker.Snapshot(sessionID(c))
	if err != nil {
		respondTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

func respondTrackerError(c *gin.Context, err error) {
	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
