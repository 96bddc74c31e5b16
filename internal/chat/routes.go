package chat

import (
	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/identity"
)

func RegisterRoutes(router *mux.Router, handler *Handler, identityMiddleware *identity.Middleware) {
	api := router.PathPrefix("/api/v1/chats").Subrouter()
	api.Use(identityMiddleware.Authenticate)

	api.HandleFunc("", handler.ListChats).Methods("GET")
	api.HandleFunc("/{id}/messages", handler.GetMessages).Methods("GET")
	api.HandleFunc("/{id}/messages", handler.SendMessage).Methods("POST")
}
