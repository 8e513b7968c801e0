package controller

import (
	"embed"
	"errors"
	"html/template"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/logger"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded HTML pages for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

type ReviewController struct {
	Service       *service.ReviewService
	DefaultLocale string
	ExposeErrors  bool
}

func NewReviewController(svc *service.ReviewService, defaultLocale string, exposeErrors bool) *ReviewController {
	return &ReviewController{Service: svc, DefaultLocale: defaultLocale, ExposeErrors: exposeErrors}
}

type reviewPage struct {
	Title    string
	Error    string
	Review   *service.Review
	Slide    *service.ReviewQuestion
	Position int
	Total    int
	PrevURL  string
	NextURL  string
}

func (c *ReviewController) locale(ctx *gin.Context) string {
	return service.NegotiateLocale(ctx.GetHeader("Accept-Language"), c.DefaultLocale)
}

// @Summary Review a learning path's saved answers
// @Tags review
// @Produce json
// @Param path path string true "learning path"
// @Param id_user query string true "user id"
// @Success 200 {object} util.Response{data=service.Review}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /reviews/{path} [get]
func (c *ReviewController) GetReview(ctx *gin.Context) {
	review, err := c.Service.Load(ctx.Request.Context(), ctx.Param("path"), ctx.Query("id_user"), c.locale(ctx))
	if err != nil {
		if errors.Is(err, util.ErrMissingUserID) || errors.Is(err, util.ErrMissingPath) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, c.ExposeErrors)
		return
	}

	util.Success(ctx, review)
}

// ReviewPage renders one question of the review at a time. slide is the
// zero based carousel position; Previous and Next move by one and stop at
// the ends.
func (c *ReviewController) ReviewPage(ctx *gin.Context) {
	path := ctx.Param("path")
	userID := ctx.Query("id_user")
	page := reviewPage{Title: path}

	review, err := c.Service.Load(ctx.Request.Context(), path, userID, c.locale(ctx))
	if err != nil {
		status := http.StatusInternalServerError
		page.Error = "internal server error"
		if errors.Is(err, util.ErrMissingUserID) || errors.Is(err, util.ErrMissingPath) {
			status = http.StatusBadRequest
			page.Error = err.Error()
		} else {
			logger.Log.Error("review page failed", zap.String("path", path), zap.Error(err))
			if c.ExposeErrors {
				page.Error = err.Error()
			}
		}
		ctx.HTML(status, "review.html", page)
		return
	}

	slide, _ := strconv.Atoi(ctx.DefaultQuery("slide", "0"))
	carousel := service.NewCarousel(len(review.Questions), slide)

	page.Review = review
	page.Total = carousel.Total
	if carousel.Total > 0 {
		page.Slide = &review.Questions[carousel.Index]
		page.Position = carousel.Index + 1
	}
	if carousel.HasPrev() {
		page.PrevURL = slideURL(userID, carousel.Prev().Index)
	}
	if carousel.HasNext() {
		page.NextURL = slideURL(userID, carousel.Next().Index)
	}

	ctx.HTML(http.StatusOK, "review.html", page)
}

func slideURL(userID string, index int) string {
	q := url.Values{}
	q.Set("id_user", userID)
	q.Set("slide", strconv.Itoa(index))
	return "?" + q.Encode()
}
