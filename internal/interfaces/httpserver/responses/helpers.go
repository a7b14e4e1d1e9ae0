package responses

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Srujankatukam/job-nova/internal/domain/job"
	"github.com/Srujankatukam/job-nova/internal/domain/session"
	"github.com/Srujankatukam/job-nova/internal/infrastructure/store"
	"github.com/Srujankatukam/job-nova/internal/utils/platformerrors"
)

// HandleError writes err as an HTTP response. Store and catalog sentinels
// map to their status codes; platform errors carry their own type;
// anything else is an internal error.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()

	if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, job.ErrJobNotFound) {
		platformerrors.WriteNew(c, platformerrors.ErrorTypeNotFound, message)
		return
	}
	if errors.Is(err, store.ErrSessionExists) {
		platformerrors.WriteNew(c, platformerrors.ErrorTypeConflict, message)
		return
	}

	var providerErr *session.ProviderError
	if errors.As(err, &providerErr) {
		logger.Error().Err(providerErr).Msg(message)
		platformerrors.WriteNew(c, platformerrors.ErrorTypeExternal, message)
		return
	}

	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response. Use this
// for route-level errors like validation failures.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	platformerrors.WriteNew(c, errorType, message)
}
