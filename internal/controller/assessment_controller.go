package controller

import (
	"errors"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service      *service.AssessmentService
	ExposeErrors bool
}

func NewAssessmentController(svc *service.AssessmentService, exposeErrors bool) *AssessmentController {
	return &AssessmentController{Service: svc, ExposeErrors: exposeErrors}
}

// @Summary List the questions of a learning path
// @Tags assessment
// @Produce json
// @Param learning_path query string true "learning path"
// @Success 200 {array} model.Question
// @Failure 400 {object} util.MessageResponse
// @Router /skill-assessment [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions(ctx.Request.Context(), ctx.Query("learning_path"))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	util.Rows(ctx, qs)
}

// @Summary List the answer choices of a learning path
// @Tags assessment
// @Produce json
// @Param learning_path query string true "learning path"
// @Success 200 {array} model.Answer
// @Failure 400 {object} util.MessageResponse
// @Router /answer-assessment [get]
func (c *AssessmentController) ListAnswers(ctx *gin.Context) {
	as, err := c.Service.ListAnswers(ctx.Request.Context(), ctx.Query("learning_path"))
	if err != nil {
		c.fail(ctx, err)
		return
	}
	util.Rows(ctx, as)
}

func (c *AssessmentController) fail(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrMissingLearningPath) {
		util.MessageError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	util.LogMessageError(ctx, err, c.ExposeErrors)
}
