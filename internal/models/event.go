package models

// ContentEvent is published to Kafka when content is created.
type ContentEvent struct {
	EventID    string `json:"event_id"`              // Unique event id
	Type       string `json:"type"`                  // question_created, answer_created, comment_created
	Timestamp  int64  `json:"timestamp"`             // Unix seconds
	UserID     int64  `json:"user_id"`               // Author of the content
	QuestionID int64  `json:"question_id,omitempty"` // Related question, when applicable
	EntityID   int64  `json:"entity_id"`             // Id of the created entity
}
