// Package flow models the client's page navigation as an explicit state
// machine, independent of any rendering framework.
package flow

import (
	"errors"
	"fmt"
)

// Page identifies one of the five application screens
type Page string

const (
	PageLogin   Page = "login"
	PageHome    Page = "home"
	PageStories Page = "stories"
	PageStory   Page = "story"
	PageReward  Page = "reward"
)

// ErrInvalidTransition is returned when a navigation is not in the
// transition table.
var ErrInvalidTransition = errors.New("invalid page transition")

// ErrNoStorySelected is returned when entering the story or reward pages
// without a selected story.
var ErrNoStorySelected = errors.New("no story selected")

// transitions is the allowed navigation table. Navigation is cyclic; there
// is no terminal page.
var transitions = map[Page][]Page{
	PageLogin:   {PageHome},
	PageHome:    {PageStories},
	PageStories: {PageStory, PageHome},
	PageStory:   {PageReward, PageStories},
	PageReward:  {PageStories, PageStory},
}

// Machine tracks the current page and the selected story. The zero story
// id means nothing is selected.
type Machine struct {
	page    Page
	storyID int64
}

// NewMachine creates a machine on the login page with no story selected
func NewMachine() *Machine {
	return &Machine{page: PageLogin}
}

// Page returns the current page
func (m *Machine) Page() Page {
	return m.page
}

// StoryID returns the selected story id, or 0 when none is selected
func (m *Machine) StoryID() int64 {
	return m.storyID
}

// SelectStory records the story the user picked
func (m *Machine) SelectStory(storyID int64) {
	m.storyID = storyID
}

// ClearStory drops the story selection
func (m *Machine) ClearStory() {
	m.storyID = 0
}

// Go navigates to the target page, enforcing the transition table and the
// selected-story guard for the story and reward pages.
func (m *Machine) Go(to Page) error {
	allowed := false
	for _, next := range transitions[m.page] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.page, to)
	}

	if (to == PageStory || to == PageReward) && m.storyID == 0 {
		return ErrNoStorySelected
	}

	m.page = to
	return nil
}
