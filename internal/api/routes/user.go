package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/user"
	"Ripple/internal/core/users"
)

// RegisterUserRoutes registers user lookup endpoints
func RegisterUserRoutes(r chi.Router, service users.Service) {
	findHandler := user.NewFindHandler(service)

	r.Get("/rpc/user.find", findHandler.HandleFind)
}
