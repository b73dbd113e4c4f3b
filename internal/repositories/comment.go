package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
)

// CommentReadRepository handles comment read operations
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByQuestionID returns the comments attached directly to a question.
func (r *CommentReadRepository) ListByQuestionID(ctx context.Context, questionID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT id, body, user_id, question_id, answer_id
		FROM comments
		WHERE question_id = $1
		ORDER BY id
	`

	var comments []models.CommentDB
	err := r.db.SelectContext(ctx, &comments, query, questionID)

	logger.Log.Infow("comment list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{questionID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

// ListByAnswerIDs returns comments grouped by answer id for a set of answers
// in one round trip.
func (r *CommentReadRepository) ListByAnswerIDs(ctx context.Context, answerIDs []int64) (map[int64][]models.CommentDB, error) {
	if len(answerIDs) == 0 {
		return map[int64][]models.CommentDB{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, body, user_id, question_id, answer_id
		FROM comments
		WHERE answer_id IN (?)
		ORDER BY id
	`, answerIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var comments []models.CommentDB
	err = r.db.SelectContext(ctx, &comments, query, args...)

	logger.Log.Infow("comment list by answers",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.CommentDB, len(answerIDs))
	for _, c := range comments {
		if c.AnswerID != nil {
			grouped[*c.AnswerID] = append(grouped[*c.AnswerID], c)
		}
	}

	return grouped, nil
}

// CommentWriteRepository handles comment write operations
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new comment and returns its id. The single-target CHECK
// constraint rejects rows with both or neither of questionID/answerID set.
func (r *CommentWriteRepository) Save(ctx context.Context, body string, userID int64, questionID, answerID *int64) (int64, error) {
	query := `
		INSERT INTO comments (body, user_id, question_id, answer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{body, userID, questionID, answerID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow("comment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}
