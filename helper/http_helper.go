package helper

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// HTTPHelper ...
type HTTPHelper struct{}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorValidation":
			statusCode = http.StatusBadRequest
		case "models.ErrorInvalidFile":
			statusCode = http.StatusBadRequest
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// GetErrorKind ...
// Machine-readable error kind reported alongside the message.
func (u *HTTPHelper) GetErrorKind(err error) string {
	switch u.getTypeData(err) {
	case "models.ErrorValidation":
		return "validation_error"
	case "models.ErrorInvalidFile":
		return "invalid_file"
	case "models.ErrorNotFound":
		return "not_found"
	default:
		return "store_error"
	}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{
		"error":   u.GetErrorKind(err),
		"message": err.Error(),
	})
}

// SendValidationError ...
// Send a binding/validation failure response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation_error",
		"message": message,
	})
}
