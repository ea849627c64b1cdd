package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"timeadventures/internal/database"
	"timeadventures/internal/models"
)

// StoryRepository handles database operations for stories. Stories are
// read-only reference data; the only write path is seeding and import.
type StoryRepository struct {
	db *database.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *database.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// GetAllStories retrieves all stories ordered by story id ascending
func (r *StoryRepository) GetAllStories() ([]models.Story, error) {
	query := `
		SELECT story_id, title, description, character_icon, background, difficulty, steps
		FROM stories
		ORDER BY story_id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories: %w", err)
	}
	defer rows.Close()

	var stories []models.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, *story)
	}

	return stories, rows.Err()
}

// GetStoryByID retrieves a single story. Returns (nil, nil) when not found.
func (r *StoryRepository) GetStoryByID(storyID int64) (*models.Story, error) {
	query := `
		SELECT story_id, title, description, character_icon, background, difficulty, steps
		FROM stories
		WHERE story_id = ?
	`
	var story models.Story
	var stepsJSON []byte

	err := r.db.QueryRow(query, storyID).Scan(
		&story.StoryID,
		&story.Title,
		&story.Description,
		&story.Character,
		&story.Background,
		&story.Difficulty,
		&stepsJSON,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	if err := json.Unmarshal(stepsJSON, &story.Steps); err != nil {
		return nil, fmt.Errorf("failed to decode story steps: %w", err)
	}

	return &story, nil
}

// CountStories returns the number of stories in the table
func (r *StoryRepository) CountStories() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM stories").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count stories: %w", err)
	}
	return count, nil
}

// InsertStory adds a story; used by seeding and backup import
func (r *StoryRepository) InsertStory(story models.Story) error {
	stepsJSON, err := json.Marshal(story.Steps)
	if err != nil {
		return fmt.Errorf("failed to encode story steps: %w", err)
	}

	query := `
		INSERT INTO stories (story_id, title, description, character_icon, background, difficulty, steps)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		story.StoryID,
		story.Title,
		story.Description,
		story.Character,
		story.Background,
		story.Difficulty,
		string(stepsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert story: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStory(s scanner) (*models.Story, error) {
	var story models.Story
	var stepsJSON []byte

	if err := s.Scan(
		&story.StoryID,
		&story.Title,
		&story.Description,
		&story.Character,
		&story.Background,
		&story.Difficulty,
		&stepsJSON,
	); err != nil {
		return nil, fmt.Errorf("failed to scan story: %w", err)
	}

	if err := json.Unmarshal(stepsJSON, &story.Steps); err != nil {
		return nil, fmt.Errorf("failed to decode story steps: %w", err)
	}

	return &story, nil
}
