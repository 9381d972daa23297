package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// FailureResponse maps a use case outcome to a status code and body. A
// ValidationError carries its field messages in Data so clients see which
// fields were rejected.
func FailureResponse(c *gin.Context, err error, message string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, Response{
			Status:  "Fail",
			Message: message + ": validation failed",
			Data:    verr.Fields,
		})
		return
	}
	ErrorResponse(c, mapErrorToStatus(err), message+": "+err.Error())
}

func mapErrorToStatus(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	default:
		// Includes domain.ErrConflict: an unreconciled concurrent
		// modification is unexpected and not retried here.
		return http.StatusInternalServerError
	}
}
