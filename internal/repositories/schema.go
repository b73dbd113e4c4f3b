package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/qa-forum/internal/logger"
)

// schema holds the forum DDL. Applied on every startup; every statement is
// idempotent, so an existing database passes through unchanged.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR(80) NOT NULL UNIQUE,
	password_hash VARCHAR(200) NOT NULL,
	reputation INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS questions (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	body TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	user_id BIGINT NOT NULL REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS answers (
	id BIGSERIAL PRIMARY KEY,
	body TEXT NOT NULL,
	is_accepted BOOLEAN NOT NULL DEFAULT FALSE,
	question_id BIGINT NOT NULL REFERENCES questions (id),
	user_id BIGINT NOT NULL REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	body VARCHAR(500) NOT NULL,
	user_id BIGINT NOT NULL REFERENCES users (id),
	question_id BIGINT REFERENCES questions (id),
	answer_id BIGINT REFERENCES answers (id),
	CONSTRAINT comments_single_target CHECK (num_nonnulls(question_id, answer_id) = 1)
);

CREATE TABLE IF NOT EXISTS tags (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(50) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS question_tags (
	question_id BIGINT NOT NULL REFERENCES questions (id),
	tag_id BIGINT NOT NULL REFERENCES tags (id),
	PRIMARY KEY (question_id, tag_id)
);
`

// Bootstrap creates the forum tables if they do not exist yet.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema bootstrap", "error", err)

	return err
}
