package models

// Tournament groups the matches, dance performances and point entries
// of one yearly edition. Deleting a tournament cascades to all three.
type Tournament struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Year int    `json:"year" db:"year"`
}
