package controller

import (
	"errors"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Service      *service.RatingService
	ExposeErrors bool
}

func NewRatingController(svc *service.RatingService, exposeErrors bool) *RatingController {
	return &RatingController{Service: svc, ExposeErrors: exposeErrors}
}

// @Summary List a user's ratings
// @Tags ratings
// @Produce json
// @Param id_user query string true "respondent identifier"
// @Success 200 {array} model.Rating
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /ratings [get]
func (c *RatingController) ListRatings(ctx *gin.Context) {
	rows, err := c.Service.List(ctx.Request.Context(), ctx.Query("id_user"))
	if err != nil {
		if errors.Is(err, util.ErrMissingUserID) {
			util.MessageError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		util.LogMessageError(ctx, err, c.ExposeErrors)
		return
	}

	util.Rows(ctx, rows)
}

// @Summary Submit a course rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param body body service.RatingRequest true "rating"
// @Success 200 {object} model.Rating
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req service.RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.MessageError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	rating, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		util.LogMessageError(ctx, err, c.ExposeErrors)
		return
	}

	util.Rows(ctx, rating)
}
