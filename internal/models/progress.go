package models

import "time"

// Attempt is one logged answer submission. Attempts are append-only;
// once stored they are never rewritten or removed.
type Attempt struct {
	Step      int       `json:"step"`
	Answer    string    `json:"answer"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressRecord ties a user to a story: furthest step reached, cumulative
// stars, completion flag and the attempt log. At most one record exists per
// (user, story) pair.
type ProgressRecord struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	StoryID     int64     `json:"story_id"`
	CurrentStep int       `json:"current_step"`
	StarsEarned int       `json:"stars_earned"`
	Completed   bool      `json:"completed"`
	Attempts    []Attempt `json:"attempts"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AttemptCount returns the number of logged attempts
func (p *ProgressRecord) AttemptCount() int {
	return len(p.Attempts)
}

// CorrectAttempts counts the attempts that were judged correct
func (p *ProgressRecord) CorrectAttempts() int {
	count := 0
	for _, a := range p.Attempts {
		if a.Correct {
			count++
		}
	}
	return count
}
