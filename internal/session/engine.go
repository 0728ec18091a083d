// ABOUTME: Session engine: start, per-set updates, progress, finish, cancel.
// ABOUTME: Pure value semantics; the caller owns the single active session.
package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/flittly/gohard/internal/models"
)

const (
	// DefaultSets is the number of sets each exercise starts with.
	DefaultSets = 3
	// DefaultReps is the rep target each set starts with.
	DefaultReps = 12
)

// Start instantiates a session from a template. Each exercise gets
// DefaultSets sets with DefaultReps reps, zero weight, not completed.
// The session id is derived from the creation timestamp.
func Start(tpl models.WorkoutTemplate) models.Session {
	now := time.Now()
	s := models.Session{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      tpl.Name,
		Date:      now,
		Exercises: make([]models.Exercise, len(tpl.Exercises)),
	}
	for i, ex := range tpl.Exercises {
		sets := make([]models.Set, DefaultSets)
		for j := range sets {
			sets[j] = models.Set{
				ID:   fmt.Sprintf("%s-set-%d", ex.ID, j),
				Reps: DefaultReps,
			}
		}
		s.Exercises[i] = models.Exercise{
			ID:       ex.ID,
			Name:     ex.Name,
			Category: ex.Category,
			Sets:     sets,
		}
	}
	return s
}

// UpdateSet returns a new session with exactly one set replaced, located by
// exercise and set id. Unknown ids are a silent no-op: the session comes
// back unchanged. The input session is never mutated.
func UpdateSet(s models.Session, exerciseID, setID string, set models.Set) models.Session {
	for i, ex := range s.Exercises {
		if ex.ID != exerciseID {
			continue
		}
		for j, old := range ex.Sets {
			if old.ID != setID {
				continue
			}
			out := s.Clone()
			out.Exercises[i].Sets[j] = set
			return out
		}
	}
	return s
}

// UpdateNotes returns a new session with one exercise's note replaced.
// Unknown exercise ids are a silent no-op, matching UpdateSet.
func UpdateNotes(s models.Session, exerciseID, notes string) models.Session {
	for i, ex := range s.Exercises {
		if ex.ID != exerciseID {
			continue
		}
		out := s.Clone()
		out.Exercises[i].Notes = notes
		return out
	}
	return s
}

// Progress returns the completed-set percentage (0-100).
// A session with no sets has zero progress.
func Progress(s models.Session) float64 {
	total := s.TotalSets()
	if total == 0 {
		return 0
	}
	return float64(s.CompletedSets()) / float64(total) * 100
}

// Finish marks the session completed with the given elapsed duration and
// derives its history entry. Callers are expected to prevent finishing a
// session with zero completed sets; the engine does not reject it.
func Finish(s models.Session, elapsedSeconds int) (models.Session, models.HistoryEntry) {
	done := s.Clone()
	done.Completed = true
	done.Duration = elapsedSeconds
	return done, models.NewHistoryEntry(done)
}
