package app

import (
	"learnpath_backend/docs"
	"learnpath_backend/pkg/monitoring"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	registerAPIRoutes(router, c)
	registerPageRoutes(router, c)

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})
}

func registerAPIRoutes(router *gin.Engine, c *controllers) {
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/ratings", c.rating.ListRatings)
		api.POST("/ratings", c.rating.CreateRating)

		api.GET("/saved-answer", c.savedAnswer.ListSavedAnswers)
		api.POST("/saved-answer", c.savedAnswer.CreateSavedAnswer)

		api.GET("/skill-assessment", c.assessment.ListQuestions)
		api.GET("/answer-assessment", c.assessment.ListAnswers)

		api.GET("/reviews/:path", c.review.GetReview)

		api.POST("/predict", c.recommendation.Predict)
	}
}

func registerPageRoutes(router *gin.Engine, c *controllers) {
	courses := router.Group("/courses")
	{
		courses.GET("/review/:path", c.review.ReviewPage)
	}
}
