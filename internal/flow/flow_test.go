package flow

import (
	"errors"
	"testing"
)

func TestMachineStartsAtLogin(t *testing.T) {
	m := NewMachine()
	if m.Page() != PageLogin {
		t.Errorf("new machine starts at %v, want %v", m.Page(), PageLogin)
	}
	if m.StoryID() != 0 {
		t.Errorf("new machine has story %d selected, want none", m.StoryID())
	}
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []Page
		wantErr error
	}{
		{
			name: "login through reward",
			path: []Page{PageHome, PageStories, PageStory, PageReward},
		},
		{
			name: "replay story from reward",
			path: []Page{PageHome, PageStories, PageStory, PageReward, PageStory},
		},
		{
			name: "back to stories from reward",
			path: []Page{PageHome, PageStories, PageStory, PageReward, PageStories},
		},
		{
			name: "back navigation",
			path: []Page{PageHome, PageStories, PageStory, PageStories, PageHome},
		},
		{
			name:    "login cannot jump to story",
			path:    []Page{PageStory},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "home cannot jump to reward",
			path:    []Page{PageHome, PageReward},
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			m.SelectStory(1)

			var err error
			for _, page := range tt.path {
				if err = m.Go(page); err != nil {
					break
				}
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("path %v: error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("path %v: unexpected error %v", tt.path, err)
			}
			if m.Page() != tt.path[len(tt.path)-1] {
				t.Errorf("ended on %v, want %v", m.Page(), tt.path[len(tt.path)-1])
			}
		})
	}
}

func TestMachineStoryGuard(t *testing.T) {
	m := NewMachine()
	if err := m.Go(PageHome); err != nil {
		t.Fatalf("login -> home: %v", err)
	}
	if err := m.Go(PageStories); err != nil {
		t.Fatalf("home -> stories: %v", err)
	}

	// Entering the story page without a selection is rejected
	if err := m.Go(PageStory); !errors.Is(err, ErrNoStorySelected) {
		t.Fatalf("stories -> story without selection: error = %v, want %v", err, ErrNoStorySelected)
	}
	if m.Page() != PageStories {
		t.Errorf("failed transition moved the machine to %v", m.Page())
	}

	m.SelectStory(3)
	if err := m.Go(PageStory); err != nil {
		t.Fatalf("stories -> story with selection: %v", err)
	}
	if m.StoryID() != 3 {
		t.Errorf("selected story = %d, want 3", m.StoryID())
	}
}
