package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/session"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/users"
)

// RegisterSessionRoutes registers session establishment endpoints
func RegisterSessionRoutes(
	r chi.Router,
	userService users.Service,
	authMw *middleware.AuthMiddleware,
	tokenSecret []byte,
	rateLimit func(http.Handler) http.Handler,
) {
	loginHandler := session.NewLoginHandler(userService, authMw, tokenSecret)
	logoutHandler := session.NewLogoutHandler(authMw)

	r.With(rateLimit).Post("/rpc/session.login", loginHandler.HandleLogin)
	r.Post("/rpc/session.logout", logoutHandler.HandleLogout)
}
