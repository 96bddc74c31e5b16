// internal/users/handlers.go

package users

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

// CreateUser registers a profile. This stands in for the real sign-in
// flow, which lives outside this service.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.service.Create(r.Context(), &dto)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	user, err := h.service.Get(r.Context(), vars["id"])
	if err != nil {
		if err == ErrUserNotFound {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateInterests(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	var dto UpdateInterestsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.service.UpdateInterests(r.Context(), userID, &dto)
	h.respondUpdated(w, user, err)
}

func (h *Handler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	var dto UpdateBioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.service.UpdateBio(r.Context(), userID, &dto)
	h.respondUpdated(w, user, err)
}

func (h *Handler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	var dto UpdateNameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.service.UpdateName(r.Context(), userID, &dto)
	h.respondUpdated(w, user, err)
}

func (h *Handler) UpdateSocialLinks(w http.ResponseWriter, r *http.Request) {
	userID := identity.MustFromContext(r.Context())

	var dto UpdateSocialLinksDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.service.UpdateSocialLinks(r.Context(), userID, &dto)
	h.respondUpdated(w, user, err)
}

func (h *Handler) respondUpdated(w http.ResponseWriter, user *User, err error) {
	if err != nil {
		if err == ErrUserNotFound {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
