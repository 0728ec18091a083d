// ABOUTME: Built-in workout template catalog.
// ABOUTME: Static, compiled-in data; templates are never mutated at runtime.
package catalog

import (
	"fmt"
	"strings"

	"github.com/flittly/gohard/internal/models"
)

// templates is the fixed catalog. Order is display order.
var templates = []models.WorkoutTemplate{
	{
		ID:    "1",
		Name:  "Chest & Triceps",
		Color: "#ef4444",
		Exercises: []models.ExerciseTemplate{
			{ID: "e1", Name: "Bench Press", Category: models.CategoryChest},
			{ID: "e2", Name: "Incline Bench Press", Category: models.CategoryChest},
			{ID: "e3", Name: "Dumbbell Fly", Category: models.CategoryChest},
			{ID: "e4", Name: "Skull Crusher", Category: models.CategoryArms},
			{ID: "e5", Name: "Rope Pushdown", Category: models.CategoryArms},
		},
	},
	{
		ID:    "2",
		Name:  "Back & Biceps",
		Color: "#3b82f6",
		Exercises: []models.ExerciseTemplate{
			{ID: "e6", Name: "Pull-Up", Category: models.CategoryBack},
			{ID: "e7", Name: "Bent-Over Row", Category: models.CategoryBack},
			{ID: "e8", Name: "Lat Pulldown", Category: models.CategoryBack},
			{ID: "e9", Name: "Barbell Curl", Category: models.CategoryArms},
			{ID: "e10", Name: "Hammer Curl", Category: models.CategoryArms},
		},
	},
	{
		ID:    "3",
		Name:  "Leg Day",
		Color: "#10b981",
		Exercises: []models.ExerciseTemplate{
			{ID: "e11", Name: "Back Squat", Category: models.CategoryLegs},
			{ID: "e12", Name: "Leg Press", Category: models.CategoryLegs},
			{ID: "e13", Name: "Leg Extension", Category: models.CategoryLegs},
			{ID: "e14", Name: "Leg Curl", Category: models.CategoryLegs},
			{ID: "e15", Name: "Standing Calf Raise", Category: models.CategoryLegs},
		},
	},
	{
		ID:    "4",
		Name:  "Shoulders & Abs",
		Color: "#f59e0b",
		Exercises: []models.ExerciseTemplate{
			{ID: "e16", Name: "Overhead Press", Category: models.CategoryShoulders},
			{ID: "e17", Name: "Lateral Raise", Category: models.CategoryShoulders},
			{ID: "e18", Name: "Front Raise", Category: models.CategoryShoulders},
			{ID: "e19", Name: "Crunch", Category: models.CategoryAbdomen},
			{ID: "e20", Name: "Plank", Category: models.CategoryAbdomen},
		},
	},
}

// Templates returns the full catalog in display order.
func Templates() []models.WorkoutTemplate {
	return templates
}

// Get finds a template by ID, exact name, or case-insensitive name prefix.
func Get(idOrName string) (models.WorkoutTemplate, error) {
	for _, t := range templates {
		if t.ID == idOrName || t.Name == idOrName {
			return t, nil
		}
	}
	needle := strings.ToLower(idOrName)
	for _, t := range templates {
		if strings.HasPrefix(strings.ToLower(t.Name), needle) {
			return t, nil
		}
	}
	return models.WorkoutTemplate{}, fmt.Errorf("unknown template: %s", idOrName)
}
