package models

import "time"

// QuestionDB represents a question record in the database
type QuestionDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Title     string    `json:"title" db:"title"`           // Question title
	Body      string    `json:"body" db:"body"`             // Question body
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp, assigned once
	UserID    int64     `json:"user_id" db:"user_id"`       // Author
}

// QuestionListItem is a question row joined with its author name,
// as returned by ListQuestions and Search.
type QuestionListItem struct {
	QuestionDB
	Author string   `json:"author" db:"author"` // Author username
	Tags   []string `json:"tags"`               // Associated tag names
}

// AnswerWithComments is an answer together with its comments.
type AnswerWithComments struct {
	AnswerDB
	Comments []CommentDB `json:"comments"`
}

// QuestionDetail is the full view of one question: the question itself, its
// tags, its answers with their comments, and the comments attached directly
// to the question.
type QuestionDetail struct {
	QuestionListItem
	Answers  []AnswerWithComments `json:"answers"`
	Comments []CommentDB          `json:"comments"`
}
