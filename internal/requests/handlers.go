// internal/requests/handlers.go

package requests

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anisapp/anis-server/internal/activities"
	"github.com/anisapp/anis-server/internal/common/utils"
	"github.com/anisapp/anis-server/internal/identity"
	"github.com/anisapp/anis-server/internal/users"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SendRequest(w http.ResponseWriter, r *http.Request) {
	requesterID := identity.MustFromContext(r.Context())

	var dto SendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := utils.ValidateStruct(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := h.service.Send(r.Context(), dto.ActivityID, requesterID)
	if err != nil {
		switch err {
		case activities.ErrActivityNotFound, users.ErrUserNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case ErrCannotRequestOwn:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send join request")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, req)
}

func (h *Handler) GetInbox(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	inbox, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list join requests")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, inbox)
}

func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	hostID := identity.MustFromContext(r.Context())
	vars := mux.Vars(r)

	req, err := h.service.Accept(r.Context(), vars["id"], hostID)
	h.respondResolved(w, req, err)
}

func (h *Handler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	hostID := identity.MustFromContext(r.Context())
	vars := mux.Vars(r)

	req, err := h.service.Decline(r.Context(), vars["id"], hostID)
	h.respondResolved(w, req, err)
}

func (h *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requesterID := identity.MustFromContext(r.Context())
	vars := mux.Vars(r)

	req, err := h.service.Cancel(r.Context(), vars["id"], requesterID)
	h.respondResolved(w, req, err)
}

func (h *Handler) respondResolved(w http.ResponseWriter, req *JoinRequest, err error) {
	if err != nil {
		switch err {
		case ErrRequestNotFound, activities.ErrActivityNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case ErrUnauthorized:
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case ErrRequestAlreadyResolved, activities.ErrActivityFull:
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve join request")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, req)
}
