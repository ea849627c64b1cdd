package models

// Step is one level within a story: a prompt, a hint, and the expected
// clock time in zero-padded HH:MM form.
type Step struct {
	Text   string `json:"text"`
	Hint   string `json:"hint"`
	Answer string `json:"answer"`
}

// Story is static content; read-only from the application's perspective.
// The JSON casing matches what the clock widget's front end expects.
type Story struct {
	StoryID     int64  `json:"storyId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Character   string `json:"character"`
	Background  string `json:"background"`
	Difficulty  string `json:"difficulty"`
	Steps       []Step `json:"steps"`
}

// StepCount returns the number of levels in the story
func (s *Story) StepCount() int {
	return len(s.Steps)
}
