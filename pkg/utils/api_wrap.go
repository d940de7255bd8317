package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy to HTTP codes. Upstream
// model failures surface as 502 so callers can tell them from our own 500s.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrShareTokenInvalid):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrModelTransport),
		errors.Is(err, ErrEmptyModelResponse),
		errors.Is(err, ErrDecodeFailed),
		errors.Is(err, ErrInvalidPlanFormat),
		errors.Is(err, ErrInvalidBatch),
		errors.Is(err, ErrStreamProtocol),
		errors.Is(err, ErrPlacesUnavailable):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
