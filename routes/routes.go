package routes

import (
	"backend/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	tracker := r.Group("/tracker")
	{
		tracker.POST("/predict", controllers.Predict)
		tracker.POST("/meals", controllers.LogMeal)
		tracker.GET("/recommendations", controllers.GetRecommendations)
		tracker.GET("", controllers.GetTracker)
	}

	food := r.Group("/food")
	{
		food.GET("/search", controllers.SearchFoods)
	}

	return r
}
