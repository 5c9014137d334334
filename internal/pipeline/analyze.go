package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/tubesense/internal/clients"
	"github.com/spacesedan/tubesense/internal/models"
	"github.com/spacesedan/tubesense/internal/videourl"
)

// AnalyzeVideo runs the full ingestion pipeline for one video URL: resolve
// the video ID, fetch comments (all pages or up to maxComments), and enrich
// them. Resolution and fetch errors abort the run; per-comment
// classification failures do not.
func AnalyzeVideo(ctx context.Context, videoURL string, fetchAll bool, maxComments int) ([]models.EnrichedComment, string, error) {
	videoID, err := videourl.ResolveVideoID(videoURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid YouTube URL: %w", err)
	}

	yt := clients.GetYouTubeClient()

	var comments []models.RawComment
	if fetchAll {
		slog.Info("[Pipeline] Fetching ALL comments (this may take a while)",
			slog.String("video_id", videoID))
		comments, err = yt.FetchAllComments(ctx, videoID)
	} else {
		slog.Info("[Pipeline] Fetching comments",
			slog.String("video_id", videoID), slog.Int("max", maxComments))
		comments, err = yt.FetchComments(ctx, videoID, maxComments)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error fetching comments: %w", err)
	}

	slog.Info("[Pipeline] Fetched comments", slog.Int("count", len(comments)))

	enricher := NewEnricher(clients.GetTranslateClient())
	enriched := enricher.EnrichComments(ctx, comments)

	return enriched, videoID, nil
}
