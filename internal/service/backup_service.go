package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"timeadventures/internal/models"
	"timeadventures/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string                  `json:"version"`
	ExportedAt time.Time               `json:"exported_at"`
	Users      []models.User           `json:"users"`
	Stories    []models.Story          `json:"stories"`
	Progress   []models.ProgressRecord `json:"progress"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	userRepo     *repository.UserRepository
	storyRepo    *repository.StoryRepository
	progressRepo *repository.ProgressRepository
}

// NewBackupService creates a new backup service
func NewBackupService(userRepo *repository.UserRepository, storyRepo *repository.StoryRepository, progressRepo *repository.ProgressRepository) *BackupService {
	return &BackupService{
		userRepo:     userRepo,
		storyRepo:    storyRepo,
		progressRepo: progressRepo,
	}
}

// Export writes a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	backup.Users = users

	stories, err := s.storyRepo.GetAllStories()
	if err != nil {
		return fmt.Errorf("failed to export stories: %w", err)
	}
	backup.Stories = stories

	progress, err := s.progressRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to export progress: %w", err)
	}
	backup.Progress = progress

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	log.Printf("Exported %d users, %d stories, %d progress records",
		len(backup.Users), len(backup.Stories), len(backup.Progress))
	return nil
}

// Import restores a backup file into the database. Users and stories that
// already exist are skipped; progress records go through the upsert path,
// so re-importing is safe.
func (s *BackupService) Import(inputPath string) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(content, &backup); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}

	log.Printf("Importing backup from %s (version %s, exported %s)",
		inputPath, backup.Version, backup.ExportedAt.Format(time.RFC3339))

	imported := 0
	for _, user := range backup.Users {
		existing, err := s.userRepo.GetUserByEmail(user.Email)
		if err != nil {
			return fmt.Errorf("failed to check user %s: %w", user.Email, err)
		}
		if existing != nil {
			continue
		}
		if err := s.userRepo.InsertUser(user); err != nil {
			return fmt.Errorf("failed to import user %s: %w", user.Email, err)
		}
		imported++
	}
	log.Printf("Imported %d users (%d skipped)", imported, len(backup.Users)-imported)

	imported = 0
	for _, story := range backup.Stories {
		existing, err := s.storyRepo.GetStoryByID(story.StoryID)
		if err != nil {
			return fmt.Errorf("failed to check story %d: %w", story.StoryID, err)
		}
		if existing != nil {
			continue
		}
		if err := s.storyRepo.InsertStory(story); err != nil {
			return fmt.Errorf("failed to import story %d: %w", story.StoryID, err)
		}
		imported++
	}
	log.Printf("Imported %d stories (%d skipped)", imported, len(backup.Stories)-imported)

	for _, record := range backup.Progress {
		if err := s.progressRepo.Restore(record); err != nil {
			return fmt.Errorf("failed to import progress for user %s story %d: %w",
				record.UserID, record.StoryID, err)
		}
	}
	log.Printf("Imported %d progress records", len(backup.Progress))

	return nil
}
