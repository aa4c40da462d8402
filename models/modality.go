package models

// ModalityCategory matches the category ENUM in the DB.
type ModalityCategory string

const (
	CategoryMale   ModalityCategory = "male"
	CategoryFemale ModalityCategory = "female"
	CategoryMixed  ModalityCategory = "mixed"
)

// Modality is a sport/event type. HasScore decides whether matches of
// this modality carry numeric scores (and possibly sets) or an
// explicitly selected winner; HasSets is only meaningful when HasScore
// is true.
type Modality struct {
	ID       int              `json:"id" db:"id"`
	Name     string           `json:"name" db:"name"`
	Category ModalityCategory `json:"category" db:"category"`
	HasScore bool             `json:"has_score" db:"has_score"`
	HasSets  bool             `json:"has_sets" db:"has_sets"`
}
