package util

import (
	"learnpath_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope used by the review, recommendation and health endpoints.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse is the bare error body of the row endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

const internalErrorMessage = "internal server error"

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// LogInternalError logs err and answers with the envelope. The error text is
// only sent when expose is set.
func LogInternalError(c *gin.Context, err error, expose bool) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	if expose {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	InternalServerError(c)
}

// Rows writes data as a bare JSON body.
func Rows(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func MessageError(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func LogMessageError(c *gin.Context, err error, expose bool) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	if expose {
		MessageError(c, http.StatusInternalServerError, err.Error())
		return
	}
	MessageError(c, http.StatusInternalServerError, internalErrorMessage)
}
