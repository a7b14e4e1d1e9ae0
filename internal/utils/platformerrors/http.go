package platformerrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse represents the standard error response format.
type HTTPErrorResponse struct {
	Error *HTTPErrorDetail `json:"error"`
}

// HTTPErrorDetail contains error details for HTTP responses.
type HTTPErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// WriteError writes err as an HTTP response. PlatformErrors are mapped via
// their type; anything else is treated as an internal error.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
			Error: &HTTPErrorDetail{Message: "unknown error", Type: "internal_error"},
		})
		return
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		log.Error().
			Err(platformErr.Err).
			Str("error_type", string(platformErr.Type)).
			Str("layer", string(platformErr.Layer)).
			Msg(platformErr.Message)

		c.JSON(ErrorTypeToHTTPStatus(platformErr.Type), HTTPErrorResponse{
			Error: &HTTPErrorDetail{
				Message: platformErr.Message,
				Type:    typeString(platformErr.Type),
			},
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, HTTPErrorResponse{
		Error: &HTTPErrorDetail{Message: err.Error(), Type: "internal_error"},
	})
}

// WriteNew creates and writes a typed error response. Use this for
// route-level failures like validation or unknown resources.
func WriteNew(c *gin.Context, errorType ErrorType, message string) {
	c.JSON(ErrorTypeToHTTPStatus(errorType), HTTPErrorResponse{
		Error: &HTTPErrorDetail{Message: message, Type: typeString(errorType)},
	})
}

func typeString(t ErrorType) string {
	switch t {
	case ErrorTypeNotFound:
		return "not_found_error"
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypeConflict:
		return "conflict_error"
	case ErrorTypeUnauthorized:
		return "unauthorized_error"
	case ErrorTypeForbidden:
		return "forbidden_error"
	case ErrorTypeExternal:
		return "external_error"
	default:
		return "internal_error"
	}
}
