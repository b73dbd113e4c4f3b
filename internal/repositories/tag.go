package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qa-forum/internal/logger"
)

// TagReadRepository handles tag read operations
type TagReadRepository struct {
	db *sqlx.DB
}

func NewTagReadRepository(db *sqlx.DB) *TagReadRepository {
	return &TagReadRepository{db: db}
}

// ListByQuestionID returns the tag names associated with one question.
func (r *TagReadRepository) ListByQuestionID(ctx context.Context, questionID int64) ([]string, error) {
	const query = `
		SELECT t.name
		FROM tags t
		JOIN question_tags qt ON qt.tag_id = t.id
		WHERE qt.question_id = $1
		ORDER BY t.name
	`

	var names []string
	err := r.db.SelectContext(ctx, &names, query, questionID)

	logger.Log.Infow("tag list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{questionID},
		"result", names,
		"error", err,
	)

	return names, err
}

// ListByQuestionIDs returns tag names grouped by question id for a set of
// questions in one round trip.
func (r *TagReadRepository) ListByQuestionIDs(ctx context.Context, questionIDs []int64) (map[int64][]string, error) {
	if len(questionIDs) == 0 {
		return map[int64][]string{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT qt.question_id, t.name
		FROM tags t
		JOIN question_tags qt ON qt.tag_id = t.id
		WHERE qt.question_id IN (?)
		ORDER BY t.name
	`, questionIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var rows []struct {
		QuestionID int64  `db:"question_id"`
		Name       string `db:"name"`
	}
	err = r.db.SelectContext(ctx, &rows, query, args...)

	logger.Log.Infow("tag list by questions",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	tags := make(map[int64][]string, len(questionIDs))
	for _, row := range rows {
		tags[row.QuestionID] = append(tags[row.QuestionID], row.Name)
	}

	return tags, nil
}

// TagWriteRepository handles tag write operations
type TagWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTagWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TagWriteRepository {
	return &TagWriteRepository{db: db, txGetter: txGetter}
}

// GetOrCreate returns the id of the tag with the given name, inserting it
// first when absent. The upsert resolves concurrent creation of the same name
// to a single row; the no-op DO UPDATE makes RETURNING yield the id either
// way.
func (r *TagWriteRepository) GetOrCreate(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	args := []any{name}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow("tag upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}
