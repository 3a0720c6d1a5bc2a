// Package router wires handlers into the gin engine.
package router

import (
	"github.com/estate/backend/internal/infrastructure/auth"
	"github.com/estate/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegistrarFunc adapts a plain function to the RouteRegistrar interface
type RegistrarFunc func(rg *gin.RouterGroup)

// RegisterRoutes calls the wrapped function
func (f RegistrarFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}

// Router assembles the API route tree. Public registrars mount outside
// the JWT middleware, protected ones inside it.
type Router struct {
	engine     *gin.Engine
	jwtService *auth.JWTService
	apiVersion string
	public     []RouteRegistrar
	protected  []RouteRegistrar
}

// New creates a new Router
func New(engine *gin.Engine, jwtService *auth.JWTService) *Router {
	return &Router{
		engine:     engine,
		jwtService: jwtService,
		apiVersion: "v1",
	}
}

// RegisterPublic adds registrars whose routes need no authentication
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) {
	r.public = append(r.public, registrars...)
}

// Register adds registrars whose routes require a valid access token
func (r *Router) Register(registrars ...RouteRegistrar) {
	r.protected = append(r.protected, registrars...)
}

// Setup mounts all registered routes under /api/<version>
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.JWTAuthMiddleware(r.jwtService))
	for _, registrar := range r.protected {
		registrar.RegisterRoutes(authenticated)
	}
}
