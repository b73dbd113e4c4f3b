package models

// CommentDB represents a comment record in the database.
// Exactly one of QuestionID or AnswerID is set; the schema enforces this
// with a CHECK constraint.
type CommentDB struct {
	ID         int64  `json:"id" db:"id"`                   // Primary key
	Body       string `json:"body" db:"body"`               // Comment body, max 500 characters
	UserID     int64  `json:"user_id" db:"user_id"`         // Author
	QuestionID *int64 `json:"question_id" db:"question_id"` // Set when the comment targets a question
	AnswerID   *int64 `json:"answer_id" db:"answer_id"`     // Set when the comment targets an answer
}
