package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
)

// AnswerReadRepository handles answer read operations
type AnswerReadRepository struct {
	db *sqlx.DB
}

func NewAnswerReadRepository(db *sqlx.DB) *AnswerReadRepository {
	return &AnswerReadRepository{db: db}
}

// ListByQuestionID returns all answers to a question in insertion order.
func (r *AnswerReadRepository) ListByQuestionID(ctx context.Context, questionID int64) ([]models.AnswerDB, error) {
	const query = `
		SELECT id, body, is_accepted, question_id, user_id
		FROM answers
		WHERE question_id = $1
		ORDER BY id
	`

	var answers []models.AnswerDB
	err := r.db.SelectContext(ctx, &answers, query, questionID)

	logger.Log.Infow("answer list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{questionID},
		"result", len(answers),
		"error", err,
	)

	return answers, err
}

// GetByID returns the answer with the given id, or nil when no such answer
// exists.
func (r *AnswerReadRepository) GetByID(ctx context.Context, id int64) (*models.AnswerDB, error) {
	const query = `
		SELECT id, body, is_accepted, question_id, user_id
		FROM answers
		WHERE id = $1
	`

	var answer models.AnswerDB
	err := r.db.GetContext(ctx, &answer, query, id)

	logger.Log.Infow("answer query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &answer, nil
}

// AnswerWriteRepository handles answer write operations
type AnswerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAnswerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AnswerWriteRepository {
	return &AnswerWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new answer and returns its id. The foreign keys back the
// existence checks done at the service layer.
func (r *AnswerWriteRepository) Save(ctx context.Context, questionID, userID int64, body string) (int64, error) {
	query := `
		INSERT INTO answers (body, question_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{body, questionID, userID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow("answer insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}
