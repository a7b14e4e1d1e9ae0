// Package routes wires HTTP handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/routes/api"
)

// Provider holds all route providers.
type Provider struct {
	API *api.Routes
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		API: api.NewRoutes(handlerProvider),
	}
}

// Register registers all routes on the engine under the given prefix.
func (p *Provider) Register(engine *gin.Engine, prefix string) {
	p.API.Register(engine, prefix)
}
