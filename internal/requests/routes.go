package requests

import (
	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/identity"
)

func RegisterRoutes(router *mux.Router, handler *Handler, identityMiddleware *identity.Middleware) {
	api := router.PathPrefix("/api/v1/requests").Subrouter()
	api.Use(identityMiddleware.Authenticate)

	api.HandleFunc("", handler.SendRequest).Methods("POST")
	api.HandleFunc("", handler.GetInbox).Methods("GET")
	api.HandleFunc("/{id}/accept", handler.AcceptRequest).Methods("POST")
	api.HandleFunc("/{id}/decline", handler.DeclineRequest).Methods("POST")
	api.HandleFunc("/{id}/cancel", handler.CancelRequest).Methods("POST")
}
