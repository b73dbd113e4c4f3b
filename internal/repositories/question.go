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

// QuestionReadRepository handles question read operations
type QuestionReadRepository struct {
	db *sqlx.DB
}

func NewQuestionReadRepository(db *sqlx.DB) *QuestionReadRepository {
	return &QuestionReadRepository{db: db}
}

// List returns all questions with their author names, newest first.
func (r *QuestionReadRepository) List(ctx context.Context) ([]models.QuestionListItem, error) {
	const query = `
		SELECT q.id, q.title, q.body, q.created_at, q.user_id, u.username AS author
		FROM questions q
		JOIN users u ON u.id = q.user_id
		ORDER BY q.created_at DESC, q.id DESC
	`

	var questions []models.QuestionListItem
	err := r.db.SelectContext(ctx, &questions, query)

	logger.Log.Infow("question list",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(questions),
		"error", err,
	)

	return questions, err
}

// GetByID returns the question with the given id, or nil when no such
// question exists.
func (r *QuestionReadRepository) GetByID(ctx context.Context, id int64) (*models.QuestionDB, error) {
	const query = `
		SELECT id, title, body, created_at, user_id
		FROM questions
		WHERE id = $1
	`

	var question models.QuestionDB
	err := r.db.GetContext(ctx, &question, query, id)

	logger.Log.Infow("question query",
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

	return &question, nil
}

// Search returns every question whose title or body contains the query as a
// case-sensitive substring, in storage-native order.
func (r *QuestionReadRepository) Search(ctx context.Context, substr string) ([]models.QuestionListItem, error) {
	const query = `
		SELECT q.id, q.title, q.body, q.created_at, q.user_id, u.username AS author
		FROM questions q
		JOIN users u ON u.id = q.user_id
		WHERE strpos(q.title, $1) > 0 OR strpos(q.body, $1) > 0
	`

	var questions []models.QuestionListItem
	err := r.db.SelectContext(ctx, &questions, query, substr)

	logger.Log.Infow("question search",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{substr},
		"result", len(questions),
		"error", err,
	)

	return questions, err
}

// QuestionWriteRepository handles question write operations
type QuestionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuestionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuestionWriteRepository {
	return &QuestionWriteRepository{db: db, txGetter: txGetter}
}

func (r *QuestionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new question and returns its id. created_at is assigned by
// the database at insert time and never touched again.
func (r *QuestionWriteRepository) Save(ctx context.Context, title, body string, userID int64) (int64, error) {
	query := `
		INSERT INTO questions (title, body, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{title, body, userID}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("question insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// AttachTag associates a tag with a question. Re-attaching an already
// associated tag is a no-op thanks to the composite primary key.
func (r *QuestionWriteRepository) AttachTag(ctx context.Context, questionID, tagID int64) error {
	query := `
		INSERT INTO question_tags (question_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (question_id, tag_id) DO NOTHING
	`
	args := []any{questionID, tagID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("question tag attach",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
