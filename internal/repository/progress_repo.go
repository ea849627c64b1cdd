package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"timeadventures/internal/database"
	"timeadventures/internal/models"
)

// ProgressRepository handles database operations for progress records.
// Records are keyed by the UNIQUE (user_id, story_id) constraint; the
// attempts column holds the full append-only log as JSON.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetByUser retrieves all progress records for a user. An empty result is
// not an error.
func (r *ProgressRepository) GetByUser(userID string) ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, story_id, current_step, stars_earned, completed, attempts, created_at, updated_at
		FROM user_progress
		WHERE user_id = ?
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		record, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// GetByUserAndStory retrieves the record for a (user, story) pair.
// Returns (nil, nil) when no record exists; that is the insert branch for
// the caller, not an error.
func (r *ProgressRepository) GetByUserAndStory(userID string, storyID int64) (*models.ProgressRecord, error) {
	return getByUserAndStory(r.db, userID, storyID)
}

// AppendAttempt appends an attempt to the (user, story) record and writes
// the merged row with a native upsert, all inside one transaction. The row
// write is last-writer-wins on the attempts column; the transaction only
// narrows the read-modify-write window and the unique key guarantees a
// single row per pair.
func (r *ProgressRepository) AppendAttempt(userID string, storyID int64, attempt models.Attempt, currentStep, starsEarned int, completed bool) (*models.ProgressRecord, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := getByUserAndStory(tx, userID, storyID)
	if err != nil {
		return nil, err
	}

	var attempts []models.Attempt
	if existing != nil {
		attempts = existing.Attempts
	}
	attempts = append(attempts, attempt)

	attemptsJSON, err := json.Marshal(attempts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attempts: %w", err)
	}

	_, err = tx.Exec(tx.GetDialect().UpsertProgressQuery(),
		userID, storyID, currentStep, starsEarned, completed, string(attemptsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert progress: %w", err)
	}

	record, err := getByUserAndStory(tx, userID, storyID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("progress row missing after upsert")
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress: %w", err)
	}

	return record, nil
}

// GetAll retrieves every progress record; used by backup export
func (r *ProgressRepository) GetAll() ([]models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, story_id, current_step, stars_earned, completed, attempts, created_at, updated_at
		FROM user_progress
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		record, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// Restore writes a whole record via the upsert path; used by backup import
func (r *ProgressRepository) Restore(record models.ProgressRecord) error {
	attemptsJSON, err := json.Marshal(record.Attempts)
	if err != nil {
		return fmt.Errorf("failed to encode attempts: %w", err)
	}

	_, err = r.db.Exec(r.db.Dialect.UpsertProgressQuery(),
		record.UserID, record.StoryID, record.CurrentStep, record.StarsEarned, record.Completed, string(attemptsJSON))
	if err != nil {
		return fmt.Errorf("failed to restore progress: %w", err)
	}
	return nil
}

// GetStats computes the user's aggregates from the stored records. The
// aggregation runs against current rows on every call; there is no cached
// counter to keep in sync.
func (r *ProgressRepository) GetStats(userID string) (*models.Stats, error) {
	query := `
		SELECT COALESCE(SUM(stars_earned), 0),
		       COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)
		FROM user_progress
		WHERE user_id = ?
	`
	stats := &models.Stats{}
	err := r.db.QueryRow(query, userID).Scan(&stats.TotalStars, &stats.StoriesCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return stats, nil
}

// getByUserAndStory runs against either the DB or an open transaction
func getByUserAndStory(q database.DBTX, userID string, storyID int64) (*models.ProgressRecord, error) {
	query := `
		SELECT id, user_id, story_id, current_step, stars_earned, completed, attempts, created_at, updated_at
		FROM user_progress
		WHERE user_id = ? AND story_id = ?
	`
	record, err := scanProgress(q.QueryRow(query, userID, storyID))
	if err == errNoProgressRow {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

var errNoProgressRow = fmt.Errorf("no progress row")

func scanProgress(s scanner) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	var attemptsJSON []byte
	var createdAt, updatedAt time.Time

	err := s.Scan(
		&record.ID,
		&record.UserID,
		&record.StoryID,
		&record.CurrentStep,
		&record.StarsEarned,
		&record.Completed,
		&attemptsJSON,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errNoProgressRow
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan progress: %w", err)
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	if len(attemptsJSON) > 0 {
		if err := json.Unmarshal(attemptsJSON, &record.Attempts); err != nil {
			return nil, fmt.Errorf("failed to decode attempts: %w", err)
		}
	}

	return &record, nil
}
