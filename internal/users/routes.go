package users

import (
	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/identity"
)

func RegisterRoutes(router *mux.Router, handler *Handler, identityMiddleware *identity.Middleware) {
	// Registration happens before the caller has an identity.
	router.HandleFunc("/api/v1/users", handler.CreateUser).Methods("POST")

	api := router.PathPrefix("/api/v1/users").Subrouter()
	api.Use(identityMiddleware.Authenticate)

	api.HandleFunc("/me/interests", handler.UpdateInterests).Methods("PUT")
	api.HandleFunc("/me/bio", handler.UpdateBio).Methods("PUT")
	api.HandleFunc("/me/name", handler.UpdateName).Methods("PUT")
	api.HandleFunc("/me/social", handler.UpdateSocialLinks).Methods("PUT")
	api.HandleFunc("/{id}", handler.GetUser).Methods("GET")
}
