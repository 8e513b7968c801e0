package controller

import (
	"errors"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SavedAnswerController struct {
	Service      *service.SavedAnswerService
	ExposeErrors bool
}

func NewSavedAnswerController(svc *service.SavedAnswerService, exposeErrors bool) *SavedAnswerController {
	return &SavedAnswerController{Service: svc, ExposeErrors: exposeErrors}
}

// @Summary List a user's saved answers
// @Tags saved-answer
// @Produce json
// @Param id_user query string true "user id"
// @Success 200 {array} model.SavedAnswer
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /saved-answer [get]
func (c *SavedAnswerController) ListSavedAnswers(ctx *gin.Context) {
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

// @Summary Save an answer
// @Tags saved-answer
// @Accept json
// @Produce json
// @Param body body service.SavedAnswerRequest true "saved answer"
// @Success 200 {object} model.SavedAnswer
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /saved-answer [post]
func (c *SavedAnswerController) CreateSavedAnswer(ctx *gin.Context) {
	var req service.SavedAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.MessageError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := c.Service.Create(ctx.Request.Context(), req)
	if err != nil {
		util.LogMessageError(ctx, err, c.ExposeErrors)
		return
	}

	util.Rows(ctx, saved)
}
