// ABOUTME: Category enum for exercise classification.
// ABOUTME: Defines the 7 fixed muscle/work categories used by the catalog.
package models

// Category classifies an exercise by the body area or style of work.
type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryLegs      Category = "legs"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryAbdomen   Category = "abdomen"
	CategoryCardio    Category = "cardio"
)

// AllCategories returns all valid exercise categories.
var AllCategories = []Category{
	CategoryChest, CategoryBack, CategoryLegs, CategoryShoulders,
	CategoryArms, CategoryAbdomen, CategoryCardio,
}

// IsValidCategory checks if a string is a valid category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}
