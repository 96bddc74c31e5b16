// internal/chat/handlers.go

package chat

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/common/utils"
	"github.com/anisapp/anis-server/internal/identity"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	chats, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list chats")
		return
	}

	if chats == nil {
		chats = []*Chat{}
	}
	utils.RespondWithJSON(w, http.StatusOK, chats)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())
	vars := mux.Vars(r)

	messages, err := h.service.Messages(r.Context(), vars["id"], userID)
	if err != nil {
		switch err {
		case ErrChatNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case ErrNotParticipant:
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get messages")
		}
		return
	}

	if messages == nil {
		messages = []*Message{}
	}
	utils.RespondWithJSON(w, http.StatusOK, messages)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())
	vars := mux.Vars(r)

	var dto SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	msg, err := h.service.SendMessage(r.Context(), vars["id"], userID, &dto)
	if err != nil {
		switch err {
		case ErrChatNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case ErrNotParticipant:
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, msg)
}
