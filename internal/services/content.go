package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrAnswerNotFound       = errors.New("answer not found")
	ErrInvalidCommentTarget = errors.New("comment must target exactly one of question or answer")
)

// maxCommentLen bounds the comment body, matching the column width.
const maxCommentLen = 500

// QuestionReader defines read operations for questions.
type QuestionReader interface {
	List(ctx context.Context) ([]models.QuestionListItem, error)
	GetByID(ctx context.Context, id int64) (*models.QuestionDB, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Save(ctx context.Context, title, body string, userID int64) (int64, error)
	AttachTag(ctx context.Context, questionID, tagID int64) error
}

// TagReader defines read operations for tags.
type TagReader interface {
	ListByQuestionID(ctx context.Context, questionID int64) ([]string, error)
	ListByQuestionIDs(ctx context.Context, questionIDs []int64) (map[int64][]string, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	GetOrCreate(ctx context.Context, name string) (int64, error)
}

// AnswerReader defines read operations for answers.
type AnswerReader interface {
	ListByQuestionID(ctx context.Context, questionID int64) ([]models.AnswerDB, error)
	GetByID(ctx context.Context, id int64) (*models.AnswerDB, error)
}

// AnswerWriter defines write operations for answers.
type AnswerWriter interface {
	Save(ctx context.Context, questionID, userID int64, body string) (int64, error)
}

// CommentReader defines read operations for comments.
type CommentReader interface {
	ListByQuestionID(ctx context.Context, questionID int64) ([]models.CommentDB, error)
	ListByAnswerIDs(ctx context.Context, answerIDs []int64) (map[int64][]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, body string, userID int64, questionID, answerID *int64) (int64, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ContentService handles question, answer and comment creation and reads.
type ContentService struct {
	users     UserReader
	questions QuestionReader
	qWriter   QuestionWriter
	tags      TagReader
	tagWriter TagWriter
	answers   AnswerReader
	aWriter   AnswerWriter
	comments  CommentReader
	cWriter   CommentWriter
	events    EventWriter // optional, nil disables publishing
}

// NewContentService creates a new ContentService. events may be nil.
func NewContentService(
	users UserReader,
	questions QuestionReader,
	qWriter QuestionWriter,
	tags TagReader,
	tagWriter TagWriter,
	answers AnswerReader,
	aWriter AnswerWriter,
	comments CommentReader,
	cWriter CommentWriter,
	events EventWriter,
) *ContentService {
	return &ContentService{
		users:     users,
		questions: questions,
		qWriter:   qWriter,
		tags:      tags,
		tagWriter: tagWriter,
		answers:   answers,
		aWriter:   aWriter,
		comments:  comments,
		cWriter:   cWriter,
		events:    events,
	}
}

// ListQuestions returns all questions newest first, with author names and
// tags attached.
func (svc *ContentService) ListQuestions(ctx context.Context) ([]models.QuestionListItem, error) {
	questions, err := svc.questions.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list questions", "err", err)
		return nil, err
	}

	ids := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	tags, err := svc.tags.ListByQuestionIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load question tags", "err", err)
		return nil, err
	}

	for i := range questions {
		questions[i].Tags = tags[questions[i].ID]
		if questions[i].Tags == nil {
			questions[i].Tags = []string{}
		}
	}

	return questions, nil
}

// normalizeTags trims names, drops the ones left empty, and collapses
// duplicates while preserving order. Case stays significant.
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// CreateQuestion creates a question, reusing existing tags by exact name and
// creating the missing ones. Returns the new question id.
func (svc *ContentService) CreateQuestion(ctx context.Context, authorID int64, title, body string, tagNames []string) (int64, error) {
	if authorID <= 0 {
		return 0, ErrAuthenticationRequired
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return 0, ErrInvalidInput
	}

	questionID, err := svc.qWriter.Save(ctx, title, body, authorID)
	if err != nil {
		logger.Log.Errorw("failed to save question", "err", err)
		return 0, err
	}

	for _, name := range normalizeTags(tagNames) {
		tagID, err := svc.tagWriter.GetOrCreate(ctx, name)
		if err != nil {
			logger.Log.Errorw("failed to upsert tag", "tag", name, "err", err)
			return 0, err
		}
		if err := svc.qWriter.AttachTag(ctx, questionID, tagID); err != nil {
			logger.Log.Errorw("failed to attach tag", "tag", name, "err", err)
			return 0, err
		}
	}

	svc.publishEvent(ctx, models.ContentEvent{
		Type:       "question_created",
		UserID:     authorID,
		QuestionID: questionID,
		EntityID:   questionID,
	})

	return questionID, nil
}

// GetQuestion returns the full view of one question: tags, answers with their
// comments, and the comments on the question itself.
func (svc *ContentService) GetQuestion(ctx context.Context, id int64) (*models.QuestionDetail, error) {
	question, err := svc.questions.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get question", "id", id, "err", err)
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	author, err := svc.users.GetByID(ctx, question.UserID)
	if err != nil {
		return nil, err
	}

	tags, err := svc.tags.ListByQuestionID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}

	answers, err := svc.answers.ListByQuestionID(ctx, id)
	if err != nil {
		return nil, err
	}

	answerIDs := make([]int64, len(answers))
	for i, a := range answers {
		answerIDs[i] = a.ID
	}
	answerComments, err := svc.comments.ListByAnswerIDs(ctx, answerIDs)
	if err != nil {
		return nil, err
	}

	questionComments, err := svc.comments.ListByQuestionID(ctx, id)
	if err != nil {
		return nil, err
	}
	if questionComments == nil {
		questionComments = []models.CommentDB{}
	}

	detail := &models.QuestionDetail{
		QuestionListItem: models.QuestionListItem{
			QuestionDB: *question,
			Tags:       tags,
		},
		Answers:  make([]models.AnswerWithComments, 0, len(answers)),
		Comments: questionComments,
	}
	if author != nil {
		detail.Author = author.Username
	}
	for _, a := range answers {
		comments := answerComments[a.ID]
		if comments == nil {
			comments = []models.CommentDB{}
		}
		detail.Answers = append(detail.Answers, models.AnswerWithComments{
			AnswerDB: a,
			Comments: comments,
		})
	}

	return detail, nil
}

// CreateAnswer appends an answer to an existing question.
func (svc *ContentService) CreateAnswer(ctx context.Context, authorID, questionID int64, body string) (int64, error) {
	if authorID <= 0 {
		return 0, ErrAuthenticationRequired
	}
	if strings.TrimSpace(body) == "" {
		return 0, ErrInvalidInput
	}

	question, err := svc.questions.GetByID(ctx, questionID)
	if err != nil {
		logger.Log.Errorw("failed to get question", "id", questionID, "err", err)
		return 0, err
	}
	if question == nil {
		return 0, ErrQuestionNotFound
	}

	answerID, err := svc.aWriter.Save(ctx, questionID, authorID, body)
	if err != nil {
		logger.Log.Errorw("failed to save answer", "err", err)
		return 0, err
	}

	svc.publishEvent(ctx, models.ContentEvent{
		Type:       "answer_created",
		UserID:     authorID,
		QuestionID: questionID,
		EntityID:   answerID,
	})

	return answerID, nil
}

// CreateComment attaches a comment to exactly one of a question or an answer.
func (svc *ContentService) CreateComment(ctx context.Context, authorID int64, body string, questionID, answerID *int64) (int64, error) {
	if authorID <= 0 {
		return 0, ErrAuthenticationRequired
	}
	if strings.TrimSpace(body) == "" || utf8.RuneCountInString(body) > maxCommentLen {
		return 0, ErrInvalidInput
	}
	if (questionID == nil) == (answerID == nil) {
		return 0, ErrInvalidCommentTarget
	}

	var relatedQuestion int64
	switch {
	case questionID != nil:
		question, err := svc.questions.GetByID(ctx, *questionID)
		if err != nil {
			return 0, err
		}
		if question == nil {
			return 0, ErrQuestionNotFound
		}
		relatedQuestion = question.ID
	case answerID != nil:
		answer, err := svc.answers.GetByID(ctx, *answerID)
		if err != nil {
			return 0, err
		}
		if answer == nil {
			return 0, ErrAnswerNotFound
		}
		relatedQuestion = answer.QuestionID
	}

	commentID, err := svc.cWriter.Save(ctx, body, authorID, questionID, answerID)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "err", err)
		return 0, err
	}

	svc.publishEvent(ctx, models.ContentEvent{
		Type:       "comment_created",
		UserID:     authorID,
		QuestionID: relatedQuestion,
		EntityID:   commentID,
	})

	return commentID, nil
}

// publishEvent sends a content event to Kafka. Failures are logged, never
// surfaced: event delivery must not fail the user's request.
func (svc *ContentService) publishEvent(ctx context.Context, event models.ContentEvent) {
	if svc.events == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal content event", "type", event.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Type),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish content event", "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("content event published", "type", event.Type, "entity_id", event.EntityID)
	}
}
