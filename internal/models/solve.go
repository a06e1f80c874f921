package models

// SolveEvent is published to the solve feed when a user is awarded points for
// a challenge for the first time.
type SolveEvent struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	ChallengeID string `json:"challenge_id"`
	Challenge   string `json:"challenge"`
	Points      int    `json:"points"`
	Timestamp   int64  `json:"timestamp"` // Unix seconds
}

// SubmissionEvent is the audit record published to Kafka for every recorded
// submission attempt, correct or not.
type SubmissionEvent struct {
	SubmissionID string `json:"submission_id"`
	UserID       string `json:"user_id"`
	ChallengeID  string `json:"challenge_id"`
	Correct      bool   `json:"correct"`
	Timestamp    int64  `json:"timestamp"` // Unix seconds
}
