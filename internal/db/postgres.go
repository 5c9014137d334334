package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

const schema = `
CREATE TABLE IF NOT EXISTS search_history (
    id UUID PRIMARY KEY,
    video_url TEXT NOT NULL,
    video_id VARCHAR(50) NOT NULL,
    total_comments INT NOT NULL,
    sentiment_distribution JSONB NOT NULL,
    language_distribution JSONB NOT NULL,
    toxic_comments_count INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS comment_analyses (
    id BIGSERIAL PRIMARY KEY,
    search_id UUID NOT NULL REFERENCES search_history(id) ON DELETE CASCADE,
    comment_id VARCHAR(100) NOT NULL,
    author TEXT NOT NULL,
    text TEXT NOT NULL,
    original_language VARCHAR(10) NOT NULL,
    sentiment VARCHAR(20) NOT NULL,
    polarity DOUBLE PRECISION NOT NULL,
    is_toxic BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_comment_analyses_search_id ON comment_analyses(search_id);
`

func InitDB() error {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("[DB] Unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("[DB] Failed to ping PostgreSQL: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return fmt.Errorf("[DB] Failed to ensure schema: %w", err)
	}

	DB = pool

	slog.Info("[DB] Connected to PostgreSQL successfully")
	return nil
}

// Enabled reports whether persistence was configured and initialized.
func Enabled() bool {
	return DB != nil
}

func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
