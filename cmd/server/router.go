package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/handover-labs/handover/internal/api"
	apiMiddleware "github.com/handover-labs/handover/internal/api/middleware"
	"github.com/handover-labs/handover/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It uses the application dependencies to create handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RecoverMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.logger)
	itemHandler := api.NewItemHandler(app.itemService, app.logger)
	transferHandler := api.NewTransferHandler(
		app.transferService,
		app.config.Server.BaseURL,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Account endpoints (public)
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Item endpoints
			r.Get("/items", itemHandler.ListItems)
			r.Post("/items", itemHandler.CreateItem)
			r.Delete("/items/{id}", itemHandler.DeleteItem)

			// Transfer endpoints
			r.Post("/transfers", transferHandler.ProposeTransfer)
			r.Get("/transfers/{token}", transferHandler.RedeemTransfer)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
