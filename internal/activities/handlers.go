// internal/activities/handlers.go

package activities

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

func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	hostID := identity.MustFromContext(r.Context())

	var dto CreateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	activity, err := h.service.Create(r.Context(), hostID, &dto)
	if err != nil {
		switch err {
		case ErrHostNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case ErrInvalidSchedule:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, activity)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	activity, err := h.service.Get(r.Context(), vars["id"])
	if err != nil {
		if err == ErrActivityNotFound {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get activity")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, activity)
}

// ListActivities returns upcoming activities by default. The host and
// sport query parameters narrow the listing instead.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	var (
		result []*Activity
		err    error
	)

	switch {
	case r.URL.Query().Get("host") != "":
		result, err = h.service.ListByHost(r.Context(), r.URL.Query().Get("host"))
	case r.URL.Query().Get("sport") != "":
		sport := SportType(r.URL.Query().Get("sport"))
		if !sport.IsValid() {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown sport type")
			return
		}
		result, err = h.service.ListBySport(r.Context(), sport)
	default:
		result, err = h.service.ListUpcoming(r.Context())
	}

	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list activities")
		return
	}

	if result == nil {
		result = []*Activity{}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
