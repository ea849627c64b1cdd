package repository

import (
	"os"
	"testing"
	"time"

	"timeadventures/internal/database"
	"timeadventures/internal/models"
)

func setupTestDB(t *testing.T, dbPath string) (*database.DB, *UserRepository, *StoryRepository, *ProgressRepository) {
	t.Helper()

	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db, NewUserRepository(db), NewStoryRepository(db), NewProgressRepository(db)
}

func seedUserAndStory(t *testing.T, users *UserRepository, stories *StoryRepository) *models.User {
	t.Helper()

	user, err := users.CreateUser("emma", "emma@example.com")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	err = stories.InsertStory(models.Story{
		StoryID:    1,
		Title:      "Test Story",
		Character:  "🐰",
		Difficulty: "Easy",
		Steps: []models.Step{
			{Text: "Wake up", Hint: "Big hand on 12", Answer: "07:00"},
			{Text: "Breakfast", Hint: "Big hand on 6", Answer: "07:30"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to insert story: %v", err)
	}

	return user
}

func TestAppendAttemptCreatesAndGrows(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, users, stories, progress := setupTestDB(t, "test_append.db")
	user := seedUserAndStory(t, users, stories)

	// First attempt creates the record
	record, err := progress.AppendAttempt(user.ID, 1, models.Attempt{
		Step: 0, Answer: "07:00", Correct: true, Timestamp: time.Now().UTC(),
	}, 1, 1, false)
	if err != nil {
		t.Fatalf("First AppendAttempt failed: %v", err)
	}
	if record.AttemptCount() != 1 {
		t.Errorf("Expected 1 attempt, got %d", record.AttemptCount())
	}
	if record.CurrentStep != 1 {
		t.Errorf("Expected current_step 1, got %d", record.CurrentStep)
	}

	// Subsequent attempts append to the log
	for i := 2; i <= 5; i++ {
		record, err = progress.AppendAttempt(user.ID, 1, models.Attempt{
			Step: 1, Answer: "07:30", Correct: true, Timestamp: time.Now().UTC(),
		}, 2, 2, true)
		if err != nil {
			t.Fatalf("AppendAttempt %d failed: %v", i, err)
		}
		if record.AttemptCount() != i {
			t.Errorf("Expected %d attempts, got %d", i, record.AttemptCount())
		}
	}

	if !record.Completed {
		t.Error("Expected completed record")
	}

	// Still a single row per (user, story) pair
	all, err := progress.GetByUser(user.ID)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 progress record, got %d", len(all))
	}
}

func TestAppendAttemptLastWriterWins(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, users, stories, progress := setupTestDB(t, "test_lastwriter.db")
	user := seedUserAndStory(t, users, stories)

	// Two writes with different summary fields: the later one determines
	// current_step and stars_earned, but both attempts stay in the log.
	_, err := progress.AppendAttempt(user.ID, 1, models.Attempt{
		Step: 0, Answer: "07:00", Correct: true, Timestamp: time.Now().UTC(),
	}, 2, 2, false)
	if err != nil {
		t.Fatalf("First AppendAttempt failed: %v", err)
	}

	record, err := progress.AppendAttempt(user.ID, 1, models.Attempt{
		Step: 0, Answer: "08:00", Correct: false, Timestamp: time.Now().UTC(),
	}, 1, 1, false)
	if err != nil {
		t.Fatalf("Second AppendAttempt failed: %v", err)
	}

	if record.CurrentStep != 1 {
		t.Errorf("Expected current_step 1 from last write, got %d", record.CurrentStep)
	}
	if record.StarsEarned != 1 {
		t.Errorf("Expected stars_earned 1 from last write, got %d", record.StarsEarned)
	}
	if record.AttemptCount() != 2 {
		t.Errorf("Expected both attempts preserved, got %d", record.AttemptCount())
	}
}

func TestGetByUserAndStoryNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, users, stories, progress := setupTestDB(t, "test_notfound.db")
	user := seedUserAndStory(t, users, stories)

	record, err := progress.GetByUserAndStory(user.ID, 999)
	if err != nil {
		t.Fatalf("GetByUserAndStory failed: %v", err)
	}
	if record != nil {
		t.Errorf("Expected nil record for missing progress, got %+v", record)
	}
}

func TestGetStats(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, users, stories, progress := setupTestDB(t, "test_stats.db")
	user := seedUserAndStory(t, users, stories)

	err := stories.InsertStory(models.Story{
		StoryID: 2, Title: "Second Story", Difficulty: "Medium",
		Steps: []models.Step{{Text: "t", Hint: "h", Answer: "09:15"}},
	})
	if err != nil {
		t.Fatalf("Failed to insert second story: %v", err)
	}

	// No progress yet: zero stats, not an error
	stats, err := progress.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalStars != 0 || stats.StoriesCompleted != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	_, err = progress.AppendAttempt(user.ID, 1, models.Attempt{
		Step: 0, Answer: "07:00", Correct: true, Timestamp: time.Now().UTC(),
	}, 1, 3, true)
	if err != nil {
		t.Fatalf("AppendAttempt failed: %v", err)
	}
	_, err = progress.AppendAttempt(user.ID, 2, models.Attempt{
		Step: 0, Answer: "09:15", Correct: true, Timestamp: time.Now().UTC(),
	}, 1, 2, false)
	if err != nil {
		t.Fatalf("AppendAttempt failed: %v", err)
	}

	stats, err = progress.GetStats(user.ID)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalStars != 5 {
		t.Errorf("Expected 5 total stars, got %d", stats.TotalStars)
	}
	if stats.StoriesCompleted != 1 {
		t.Errorf("Expected 1 completed story, got %d", stats.StoriesCompleted)
	}
}

func TestUserRepositoryLookups(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, users, _, _ := setupTestDB(t, "test_users.db")

	missing, err := users.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown email, got %+v", missing)
	}

	created, err := users.CreateUser("emma", "emma@example.com")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID == "" {
		t.Error("Expected generated user ID")
	}

	found, err := users.GetUserByEmail("emma@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Errorf("Expected to find created user, got %+v", found)
	}

	if err := users.UpdateUsername(created.ID, "emma-rose"); err != nil {
		t.Fatalf("UpdateUsername failed: %v", err)
	}

	updated, err := users.GetUserByID(created.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if updated.Username != "emma-rose" {
		t.Errorf("Expected updated username, got %s", updated.Username)
	}
}

func TestStoryRepositoryOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, _, stories, _ := setupTestDB(t, "test_stories.db")

	// Insert out of order; reads must come back sorted by story_id
	for _, id := range []int64{3, 1, 2} {
		err := stories.InsertStory(models.Story{
			StoryID: id, Title: "Story", Difficulty: "Easy",
			Steps: []models.Step{{Text: "t", Hint: "h", Answer: "07:00"}},
		})
		if err != nil {
			t.Fatalf("InsertStory failed: %v", err)
		}
	}

	all, err := stories.GetAllStories()
	if err != nil {
		t.Fatalf("GetAllStories failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 stories, got %d", len(all))
	}
	for i, want := range []int64{1, 2, 3} {
		if all[i].StoryID != want {
			t.Errorf("Expected story %d at position %d, got %d", want, i, all[i].StoryID)
		}
	}
}
