package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/spacesedan/tubesense/config"
	"github.com/spacesedan/tubesense/internal/analysis"
	"github.com/spacesedan/tubesense/internal/chatbot"
	"github.com/spacesedan/tubesense/internal/clients"
	"github.com/spacesedan/tubesense/internal/db"
	"github.com/spacesedan/tubesense/internal/models"
	"github.com/spacesedan/tubesense/internal/pipeline"
	"github.com/spacesedan/tubesense/internal/videourl"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type AnalyzeRequest struct {
	URL         string `json:"url"`
	MaxComments int    `json:"max_comments"`
	FetchAll    bool   `json:"fetch_all"`
}

type AnalyzeResponse struct {
	Success               bool                     `json:"success"`
	VideoID               string                   `json:"video_id"`
	Comments              []models.EnrichedComment `json:"comments"`
	TotalComments         int                      `json:"total_comments"`
	SentimentDistribution map[string]int           `json:"sentiment_distribution"`
	LanguageDistribution  map[string]int           `json:"language_distribution"`
	ToxicCommentsCount    int                      `json:"toxic_comments_count"`
	SampleComments        map[string][]string      `json:"sample_comments"`
	Dashboard             models.DashboardData     `json:"dashboard"`
	Cached                bool                     `json:"cached,omitempty"`
}

type ChatbotRequest struct {
	Question string                  `json:"question"`
	Context  *models.AnalysisSummary `json:"context"`
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "YouTube URL is required"})
		return
	}
	if req.MaxComments <= 0 {
		req.MaxComments = config.DEFAULT_MAX_COMMENTS
	}

	// Repeat lookups for an already analyzed video are served from cache.
	if cache := clients.GetValkeyClient(); cache != nil && !req.FetchAll {
		if videoID, err := videourl.ResolveVideoID(req.URL); err == nil {
			if summary, ok := cache.GetCachedSummary(c.Request.Context(), videoID); ok {
				c.JSON(http.StatusOK, AnalyzeResponse{
					Success:               true,
					VideoID:               videoID,
					TotalComments:         summary.TotalComments,
					SentimentDistribution: summary.SentimentDistribution,
					LanguageDistribution:  summary.LanguageDistribution,
					ToxicCommentsCount:    summary.ToxicCommentsCount,
					SampleComments:        summary.SampleComments,
					Cached:                true,
				})
				return
			}
		}
	}

	enriched, videoID, err := pipeline.AnalyzeVideo(c.Request.Context(), req.URL, req.FetchAll, req.MaxComments)
	if err != nil {
		switch {
		case errors.Is(err, videourl.ErrNoVideoID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, clients.ErrMissingAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	summary := analysis.BuildSummary(enriched, analysis.APISampleCap)

	if db.Enabled() {
		searchID := uuid.NewString()
		if err := db.StoreAnalysis(c.Request.Context(), searchID, req.URL, videoID, summary, enriched); err != nil {
			slog.Error("[API] Failed to persist analysis",
				slog.String("video_id", videoID), slog.String("error", err.Error()))
		}
	}

	if cache := clients.GetValkeyClient(); cache != nil {
		if err := cache.CacheSummary(c.Request.Context(), videoID, summary); err != nil {
			slog.Warn("[API] Failed to cache summary",
				slog.String("video_id", videoID), slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:               true,
		VideoID:               videoID,
		Comments:              enriched,
		TotalComments:         summary.TotalComments,
		SentimentDistribution: summary.SentimentDistribution,
		LanguageDistribution:  summary.LanguageDistribution,
		ToxicCommentsCount:    summary.ToxicCommentsCount,
		SampleComments:        summary.SampleComments,
		Dashboard:             analysis.BuildDashboard(enriched),
	})
}

func (h *Handler) Chatbot(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	response := chatbot.AskQuestion(c.Request.Context(), req.Question, req.Context)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (h *Handler) RecentSearches(c *gin.Context) {
	if !db.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Persistence is not configured"})
		return
	}

	records, err := db.GetRecentSearches(c.Request.Context(), 20)
	if err != nil {
		slog.Error("[API] Failed to load recent searches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"searches": records, "total": len(records)})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().Format(time.RFC3339),
		"persistence": db.Enabled(),
		"cache":       clients.GetValkeyClient() != nil,
	})
}
