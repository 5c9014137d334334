package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/tubesense/internal/models"
)

// MAX_PERSISTED_COMMENTS bounds how many enriched comments are stored per
// search; the full batch only ever lives in memory.
const MAX_PERSISTED_COMMENTS = 50

type SearchRecord struct {
	ID            string    `json:"id"`
	VideoURL      string    `json:"video_url"`
	VideoID       string    `json:"video_id"`
	TotalComments int       `json:"total_comments"`
	CreatedAt     time.Time `json:"created_at"`
}

// StoreAnalysis persists one search record plus the first
// MAX_PERSISTED_COMMENTS enriched comments, keyed by searchID.
func StoreAnalysis(ctx context.Context, searchID, videoURL, videoID string, summary models.AnalysisSummary, comments []models.EnrichedComment) error {
	sentimentJSON, err := json.Marshal(summary.SentimentDistribution)
	if err != nil {
		return fmt.Errorf("failed to marshal sentiment distribution: %w", err)
	}
	languageJSON, err := json.Marshal(summary.LanguageDistribution)
	if err != nil {
		return fmt.Errorf("failed to marshal language distribution: %w", err)
	}

	_, err = DB.Exec(ctx, `
        INSERT INTO search_history
            (id, video_url, video_id, total_comments, sentiment_distribution, language_distribution, toxic_comments_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, searchID, videoURL, videoID, summary.TotalComments, sentimentJSON, languageJSON, summary.ToxicCommentsCount)
	if err != nil {
		return fmt.Errorf("failed to insert search history: %w", err)
	}

	if len(comments) > MAX_PERSISTED_COMMENTS {
		comments = comments[:MAX_PERSISTED_COMMENTS]
	}
	if len(comments) == 0 {
		return nil
	}

	query := `INSERT INTO comment_analyses (search_id, comment_id, author, text, original_language, sentiment, polarity, is_toxic) VALUES `

	values := []interface{}{}
	placeholderParts := []string{}

	for i, comment := range comments {
		offset := i * 8
		placeholderParts = append(placeholderParts, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			offset+1, offset+2, offset+3, offset+4, offset+5, offset+6, offset+7, offset+8))

		values = append(values, searchID, comment.ID, comment.Author, comment.Text,
			comment.OriginalLanguage, comment.Sentiment, comment.Polarity, comment.IsToxic)
	}

	query += strings.Join(placeholderParts, ", ")

	_, err = DB.Exec(ctx, query, values...)
	if err != nil {
		return fmt.Errorf("failed to insert comment analyses: %w", err)
	}

	slog.Info("[DB] Stored analysis",
		slog.String("search_id", searchID),
		slog.Int("comments", len(comments)))
	return nil
}

// GetRecentSearches returns the latest analysis runs, newest first.
func GetRecentSearches(ctx context.Context, limit int) ([]SearchRecord, error) {
	rows, err := DB.Query(ctx, `
        SELECT id, video_url, video_id, total_comments, created_at
        FROM search_history
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var record SearchRecord
		if err := rows.Scan(&record.ID, &record.VideoURL, &record.VideoID,
			&record.TotalComments, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
