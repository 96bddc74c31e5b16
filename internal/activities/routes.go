package activities

import (
	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/identity"
)

func RegisterRoutes(router *mux.Router, handler *Handler, identityMiddleware *identity.Middleware) {
	api := router.PathPrefix("/api/v1/activities").Subrouter()
	api.Use(identityMiddleware.Authenticate)

	api.HandleFunc("", handler.ListActivities).Methods("GET")
	api.HandleFunc("", handler.CreateActivity).Methods("POST")
	api.HandleFunc("/{id}", handler.GetActivity).Methods("GET")
}
