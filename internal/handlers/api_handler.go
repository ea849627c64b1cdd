package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"timeadventures/internal/metrics"
	"timeadventures/internal/models"
	"timeadventures/internal/service"
)

// APIHandler serves the JSON API
type APIHandler struct {
	userService     *service.UserService
	storyService    *service.StoryService
	progressService *service.ProgressService
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(userService *service.UserService, storyService *service.StoryService, progressService *service.ProgressService) *APIHandler {
	return &APIHandler{
		userService:     userService,
		storyService:    storyService,
		progressService: progressService,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type progressRequest struct {
	UserID      string `json:"userId"`
	StoryID     int64  `json:"storyId"`
	StepIndex   int    `json:"stepIndex"`
	Answer      string `json:"answer"`
	IsCorrect   bool   `json:"isCorrect"`
	StarsEarned int    `json:"starsEarned"`
	Completed   bool   `json:"completed"`
}

// Index lists the available endpoints
func (h *APIHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"message": "Time Adventures API is running",
		"endpoints": map[string]string{
			"health":         "/api/health",
			"login":          "POST /api/users/login",
			"stories":        "GET /api/stories",
			"progress":       "GET /api/progress/{userId}",
			"stats":          "GET /api/progress/{userId}/stats",
			"updateProgress": "POST /api/progress",
		},
	})
}

// Health is the liveness probe
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Time Adventures API is running",
	})
}

// Login upserts the user identity by email and returns it with fresh stats
func (h *APIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Username and email are required"})
		return
	}

	user, stats, err := h.userService.Login(req.Username, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	metrics.LoginsTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"stats": stats,
	})
}

// GetStories returns the catalog ordered by story id ascending
func (h *APIHandler) GetStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.storyService.GetAllStories()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.Story{"stories": stories})
}

// GetProgress returns all progress records for a user, possibly empty
func (h *APIHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	records, err := h.progressService.GetProgress(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// GetStats returns the user's aggregates, recomputed from stored records
func (h *APIHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	stats, err := h.progressService.GetStats(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// RecordProgress appends an attempt and upserts the progress record
func (h *APIHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}

	record, err := h.progressService.RecordAttempt(
		req.UserID, req.StoryID, req.StepIndex, req.Answer,
		req.IsCorrect, req.StarsEarned, req.Completed)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	metrics.AttemptsRecordedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]*models.ProgressRecord{"progress": record})
}
