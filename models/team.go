package models

// Team is a class team competing in one school year. (Name, Year) is
// unique. Teams are referenced weakly by matches (winner, walkover):
// deleting a team nulls those references without touching the match.
type Team struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Year  int    `json:"year" db:"year"`
	Grade string `json:"grade" db:"grade"`
}
