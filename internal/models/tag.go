package models

// TagDB represents a tag record in the database
type TagDB struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Unique tag name, case-sensitive
}
