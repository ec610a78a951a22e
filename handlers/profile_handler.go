package handlers

import (
	"encoding/json"
	"net/http"

	"brcroadlines/models"
	"brcroadlines/repository"
)

// ProfileHandler manages the single company profile used for PDF
// letterheads.
type ProfileHandler struct {
	Repo repository.ProfileRepository
}

func NewProfileHandler(repo repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if profile.CompanyName == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Company name is required",
		})
		return
	}

	if err := h.Repo.SaveProfile(&profile); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to save company profile: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Company profile saved",
		Data:    profile,
	})
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetProfile()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "No company profile configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: profile})
}
