package models

// Submission is one flag submission attempt. The table is an append-only
// audit log: duplicate and incorrect attempts are recorded too, with the raw
// untrimmed flag text.
type Submission struct {
	ID          string `json:"id" db:"id"`
	UserID      string `json:"user_id" db:"user_id"`
	ChallengeID string `json:"challenge_id" db:"challenge_id"`
	Flag        string `json:"flag" db:"flag"`       // Submitted flag text, as received
	Correct     bool   `json:"correct" db:"correct"` // Whether the flag matched
}
