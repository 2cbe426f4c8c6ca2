package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/post"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// RegisterPostRoutes registers post feed and mutation endpoints.
// Queries are GET and public; procedures are POST, authenticated and
// rate limited.
func RegisterPostRoutes(
	r chi.Router,
	service posts.Service,
	authMw *middleware.AuthMiddleware,
	rateLimit func(http.Handler) http.Handler,
) {
	fetchHandler := post.NewFetchHandler(service)
	fetchByIDHandler := post.NewFetchByIDHandler(service)
	createHandler := post.NewCreateHandler(service)
	editHandler := post.NewEditHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Get("/rpc/post.fetch", fetchHandler.HandleFetch)
	r.Get("/rpc/post.fetchById", fetchByIDHandler.HandleFetchByID)

	r.With(rateLimit, authMw.RequireAuth).Post("/rpc/post.create", createHandler.HandleCreate)
	r.With(rateLimit, authMw.RequireAuth).Post("/rpc/post.edit", editHandler.HandleEdit)
	r.With(rateLimit, authMw.RequireAuth).Post("/rpc/post.delete", deleteHandler.HandleDelete)
}
