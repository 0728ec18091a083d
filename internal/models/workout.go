// ABOUTME: Core workout domain types: templates, sessions, sets, history.
// ABOUTME: Sessions are value types; engine operations return new values.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseTemplate is one exercise in a workout template. Immutable.
type ExerciseTemplate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// WorkoutTemplate is a predefined workout blueprint. Immutable.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Color     string             `json:"color"`
	Exercises []ExerciseTemplate `json:"exercises"`
}

// WeightStep is the default weight increment in kilograms.
const WeightStep = 2.5

// Set is one unit of exercise work within a session.
type Set struct {
	ID        string  `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// AddReps returns a copy of the set with reps adjusted by delta, floored at 0.
func (s Set) AddReps(delta int) Set {
	s.Reps += delta
	if s.Reps < 0 {
		s.Reps = 0
	}
	return s
}

// AddWeight returns a copy of the set with weight adjusted by delta, floored at 0.
func (s Set) AddWeight(delta float64) Set {
	s.Weight += delta
	if s.Weight < 0 {
		s.Weight = 0
	}
	return s
}

// ToggleCompleted returns a copy of the set with the completed flag flipped.
// Toggling does not validate that reps or weight are nonzero.
func (s Set) ToggleCompleted() Set {
	s.Completed = !s.Completed
	return s
}

// Exercise is a session instance of an exercise template with its sets.
type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Sets     []Set    `json:"sets"`
	Notes    string   `json:"notes,omitempty"`
}

// CompletedSets counts the sets marked completed.
func (e Exercise) CompletedSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// Session is one live or just-finished instantiation of a template.
// The exercise list and per-exercise set count are fixed at creation;
// only per-set fields mutate afterward.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      time.Time  `json:"date"`
	Exercises []Exercise `json:"exercises"`
	Duration  int        `json:"duration,omitempty"` // seconds, set at finish
	Completed bool       `json:"completed"`
}

// TotalSets counts all sets across exercises, completed or not.
func (s Session) TotalSets() int {
	n := 0
	for _, e := range s.Exercises {
		n += len(e.Sets)
	}
	return n
}

// CompletedSets counts completed sets across all exercises.
func (s Session) CompletedSets() int {
	n := 0
	for _, e := range s.Exercises {
		n += e.CompletedSets()
	}
	return n
}

// Clone returns a deep copy of the session. Engine operations copy before
// replacing a set so the caller's session value is never mutated.
func (s Session) Clone() Session {
	out := s
	out.Exercises = make([]Exercise, len(s.Exercises))
	for i, e := range s.Exercises {
		ce := e
		ce.Sets = make([]Set, len(e.Sets))
		copy(ce.Sets, e.Sets)
		out.Exercises[i] = ce
	}
	return out
}

// HistoryEntry is the immutable summary record of one finished session.
// JSON field names match the original browser-storage format.
type HistoryEntry struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"workoutId"`
	SessionName string    `json:"workoutName"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"` // seconds
	TotalSets   int       `json:"totalSets"`
	TotalReps   int       `json:"totalReps"`
	TotalWeight float64   `json:"totalWeight"` // Σ weight×reps over completed sets
}

// NewHistoryEntry derives the summary record for a finished session.
// TotalSets counts every set; TotalReps and TotalWeight count only sets
// with Completed == true.
func NewHistoryEntry(s Session) HistoryEntry {
	entry := HistoryEntry{
		ID:          uuid.New().String(),
		SessionID:   s.ID,
		SessionName: s.Name,
		Date:        s.Date,
		Duration:    s.Duration,
		TotalSets:   s.TotalSets(),
	}
	for _, e := range s.Exercises {
		for _, set := range e.Sets {
			if !set.Completed {
				continue
			}
			entry.TotalReps += set.Reps
			entry.TotalWeight += set.Weight * float64(set.Reps)
		}
	}
	return entry
}
