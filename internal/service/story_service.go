package service

import (
	"fmt"
	"log"

	"timeadventures/internal/clock"
	"timeadventures/internal/models"
	"timeadventures/internal/repository"
)

// StoryService serves the read-only story catalog
type StoryService struct {
	storyRepo *repository.StoryRepository
}

// NewStoryService creates a new story service
func NewStoryService(storyRepo *repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// GetAllStories returns the catalog ordered by story id
func (s *StoryService) GetAllStories() ([]models.Story, error) {
	stories, err := s.storyRepo.GetAllStories()
	if err != nil {
		return nil, &StorageError{Op: "get stories", Err: err}
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return stories, nil
}

// SeedDefaultStories provisions the built-in story catalog when the table
// is empty. Stories are reference data and never mutated afterwards.
func (s *StoryService) SeedDefaultStories() error {
	count, err := s.storyRepo.CountStories()
	if err != nil {
		return &StorageError{Op: "count stories", Err: err}
	}
	if count > 0 {
		return nil
	}

	for _, story := range defaultStories {
		// Step answers must parse as valid clock times before they are
		// handed to players
		for i, step := range story.Steps {
			normalized, err := clock.Normalize(step.Answer)
			if err != nil {
				return fmt.Errorf("story %d step %d has invalid answer %q: %w", story.StoryID, i, step.Answer, err)
			}
			story.Steps[i].Answer = normalized
		}

		if err := s.storyRepo.InsertStory(story); err != nil {
			return &StorageError{Op: "seed stories", Err: err}
		}
		log.Printf("Seeded story %d: %s", story.StoryID, story.Title)
	}

	return nil
}

// defaultStories is the built-in catalog. Answers are zero-padded HH:MM on
// the 12-hour dial, matching what the clock widget emits.
var defaultStories = []models.Story{
	{
		StoryID:     1,
		Title:       "Bella Bunny's Big Day",
		Description: "Help Bella the bunny get through her morning on time!",
		Character:   "🐰",
		Background:  "linear-gradient(135deg, #fbc2eb, #a6c1ee)",
		Difficulty:  "Easy",
		Steps: []models.Step{
			{
				Text:   "Bella wakes up at 7 o'clock sharp. Can you set the clock to show 7 o'clock?",
				Hint:   "Point the short hand at the 7 and the long hand at the 12.",
				Answer: "07:00",
			},
			{
				Text:   "Carrot breakfast is at half past 7! Show Bella half past 7 on the clock.",
				Hint:   "Half past means the long hand points straight down at the 6.",
				Answer: "07:30",
			},
			{
				Text:   "Bella hops to school at 8 o'clock. Set the clock to 8 o'clock.",
				Hint:   "The short hand moves to the 8 while the long hand goes back to the 12.",
				Answer: "08:00",
			},
		},
	},
	{
		StoryID:     2,
		Title:       "Captain Tico's Treasure Hunt",
		Description: "Sail with Tico the parrot and read the clock to find the treasure!",
		Character:   "🦜",
		Background:  "linear-gradient(135deg, #84fab0, #8fd3f4)",
		Difficulty:  "Medium",
		Steps: []models.Step{
			{
				Text:   "The ship sets sail at quarter past 9. Set the clock for departure!",
				Hint:   "Quarter past means the long hand points at the 3.",
				Answer: "09:15",
			},
			{
				Text:   "The treasure map says to dig at quarter to 1. Show that time on the clock.",
				Hint:   "Quarter to 1 means the long hand is on the 9 and the short hand is almost at 1.",
				Answer: "12:45",
			},
			{
				Text:   "Tico celebrates with crackers at 3:30. Can you set the clock to 3:30?",
				Hint:   "The long hand points at the 6, and the short hand sits between 3 and 4.",
				Answer: "03:30",
			},
		},
	},
	{
		StoryID:     3,
		Title:       "Luna's Moonlight Mission",
		Description: "Count down to blastoff with Luna the astronaut cat!",
		Character:   "🐱‍🚀",
		Background:  "linear-gradient(135deg, #667eea, #764ba2)",
		Difficulty:  "Hard",
		Steps: []models.Step{
			{
				Text:   "Mission control starts the countdown at 6:05. Set the clock to 6:05.",
				Hint:   "The long hand just past the 12, pointing at the 1.",
				Answer: "06:05",
			},
			{
				Text:   "The rocket fuels up at 8:50. Show 8:50 on the clock.",
				Hint:   "The long hand points at the 10, and the short hand is nearly at 9.",
				Answer: "08:50",
			},
			{
				Text:   "Blastoff is at 10:25! Set the clock for launch!",
				Hint:   "The long hand points at the 5, and the short hand is between 10 and 11.",
				Answer: "10:25",
			},
		},
	},
}
