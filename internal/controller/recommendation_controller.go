package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Service      *service.RecommendationService
	ExposeErrors bool
}

func NewRecommendationController(svc *service.RecommendationService, exposeErrors bool) *RecommendationController {
	return &RecommendationController{Service: svc, ExposeErrors: exposeErrors}
}

type predictRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// @Summary Recommend jobs from a user's rated courses
// @Tags recommendation
// @Accept json
// @Produce json
// @Param body body predictRequest true "user"
// @Success 200 {object} service.RecommendationResponse
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /predict [post]
func (c *RecommendationController) Predict(ctx *gin.Context) {
	var req predictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.MessageError(ctx, http.StatusBadRequest, "user_id is required")
		return
	}

	recs, err := c.Service.Recommend(ctx.Request.Context(), req.UserID)
	if err != nil {
		util.LogMessageError(ctx, err, c.ExposeErrors)
		return
	}

	util.Rows(ctx, service.NewRecommendationResponse(recs))
}
