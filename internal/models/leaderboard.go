package models

// LeaderboardEntry is a ranked user row. Password is excluded structurally.
type LeaderboardEntry struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Score    int    `json:"score" db:"score"`
	Solves   int    `json:"solves" db:"solves"` // Count of solved challenges
}
