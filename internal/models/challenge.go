package models

// Difficulty levels used by challenge records.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Challenge represents a CTF task. Records are immutable after seeding.
//
// Flag is the secret participants must submit; it is tagged `json:"-"` so no
// catalog-facing payload can ever carry it.
type Challenge struct {
	ID          string `json:"id" db:"id"`                   // Opaque string identifier
	Title       string `json:"title" db:"title"`             // Challenge title
	Category    string `json:"category" db:"category"`       // Web, Crypto, Misc, ...
	Difficulty  string `json:"difficulty" db:"difficulty"`   // Easy | Medium | Hard
	Points      int    `json:"points" db:"points"`           // Score awarded for solving
	Description string `json:"description" db:"description"` // Challenge statement
	Flag        string `json:"-" db:"flag"`                  // Correct flag, never serialized
}
