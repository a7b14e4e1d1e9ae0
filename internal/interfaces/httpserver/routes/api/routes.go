// Package api registers the public API routes.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
)

// Routes holds the API route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new API routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register registers all API routes on the engine. REST routes live under
// the prefix; the WebSocket endpoint is served from the engine root.
func (r *Routes) Register(engine *gin.Engine, prefix string) {
	grp := engine.Group(prefix)
	RegisterAvatarRoutes(grp, r.handlers.Avatar)
	RegisterJobRoutes(grp, r.handlers.Job)

	engine.GET("/ws/avatar/:sessionId", r.handlers.WS.Handle)
}
