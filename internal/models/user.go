package models

// User represents a participant record in the database.
//
// Password is stored and served in plain text: this backend is a demo and
// deliberately performs no hashing, so auth responses expose the raw record.
// See README.md for the list of known limitations.
type User struct {
	ID       string   `json:"id" db:"id"`             // Opaque string identifier
	Username string   `json:"username" db:"username"` // Display name
	Email    string   `json:"email" db:"email"`       // Login email, unique
	Password string   `json:"password" db:"password"` // Plain password (demo only)
	Score    int      `json:"score" db:"score"`       // Accumulated points from solved challenges
	Solved   []string `json:"solved"`                 // Solved challenge IDs, duplicate-free
}

// HasSolved reports whether the challenge id is already in the solved set.
func (u *User) HasSolved(challengeID string) bool {
	for _, id := range u.Solved {
		if id == challengeID {
			return true
		}
	}
	return false
}
