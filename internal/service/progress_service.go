package service

import (
	"strings"
	"time"

	"timeadventures/internal/models"
	"timeadventures/internal/repository"
)

// ProgressService implements the progress store: attempt recording with
// upsert semantics and derived per-user statistics.
type ProgressService struct {
	progressRepo *repository.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// RecordAttempt appends an attempt for the (user, story) pair and upserts
// the merged record. Stars and the completion flag are caller-supplied
// cumulative values; the attempt timestamp is assigned server-side.
func (s *ProgressService) RecordAttempt(userID string, storyID int64, stepIndex int, answer string, isCorrect bool, starsEarned int, completed bool) (*models.ProgressRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ValidationError{Field: "userId", Message: "userId is required"}
	}

	attempt := models.Attempt{
		Step:      stepIndex,
		Answer:    answer,
		Correct:   isCorrect,
		Timestamp: time.Now().UTC(),
	}

	record, err := s.progressRepo.AppendAttempt(userID, storyID, attempt, stepIndex, starsEarned, completed)
	if err != nil {
		return nil, &StorageError{Op: "record attempt", Err: err}
	}

	return record, nil
}

// GetProgress returns all of the user's progress records. A user with no
// records gets an empty list, not an error.
func (s *ProgressService) GetProgress(userID string) ([]models.ProgressRecord, error) {
	records, err := s.progressRepo.GetByUser(userID)
	if err != nil {
		return nil, &StorageError{Op: "get progress", Err: err}
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}
	return records, nil
}

// GetStats recomputes the user's aggregates from stored records on every
// call; recomputation is the consistency mechanism.
func (s *ProgressService) GetStats(userID string) (*models.Stats, error) {
	stats, err := s.progressRepo.GetStats(userID)
	if err != nil {
		return nil, &StorageError{Op: "get stats", Err: err}
	}
	return stats, nil
}
