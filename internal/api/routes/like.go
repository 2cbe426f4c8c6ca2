package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/like"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/likes"
)

// RegisterLikeRoutes registers the like toggle endpoint
func RegisterLikeRoutes(
	r chi.Router,
	service likes.Service,
	authMw *middleware.AuthMiddleware,
	rateLimit func(http.Handler) http.Handler,
) {
	setLikeStateHandler := like.NewSetLikeStateHandler(service)

	r.With(rateLimit, authMw.RequireAuth).Post("/rpc/post.setLikeState", setLikeStateHandler.HandleSetLikeState)
}
