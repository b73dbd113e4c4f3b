package models

// AnswerDB represents an answer record in the database
type AnswerDB struct {
	ID         int64  `json:"id" db:"id"`                   // Primary key
	Body       string `json:"body" db:"body"`               // Answer body
	IsAccepted bool   `json:"is_accepted" db:"is_accepted"` // Accepted-answer flag, not toggled anywhere yet
	QuestionID int64  `json:"question_id" db:"question_id"` // Parent question
	UserID     int64  `json:"user_id" db:"user_id"`         // Author
}
