package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/spacesedan/tubesense/internal/models"
)

const (
	YOUTUBE_API_ENDPOINT  = "https://www.googleapis.com/youtube/v3"
	YOUTUBE_MAX_PAGE_SIZE = 100
)

var (
	youtubeInstance *YouTubeClient
	youtubeOnce     sync.Once
)

// ErrMissingAPIKey is a configuration error: it is raised before any network
// call when YOUTUBE_API_KEY is absent.
var ErrMissingAPIKey = errors.New("[YouTubeClient] API key is missing")

type YouTubeClient struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
}

func GetYouTubeClient() *YouTubeClient {
	youtubeOnce.Do(func() {
		youtubeInstance = &YouTubeClient{
			Client:  &http.Client{Timeout: 30 * time.Second},
			APIKey:  os.Getenv("YOUTUBE_API_KEY"),
			BaseURL: YOUTUBE_API_ENDPOINT,
		}
	})
	return youtubeInstance
}

// FetchCommentPage requests a single relevance-ordered page of top-level
// comments. pageToken is the opaque cursor from the previous page; an empty
// returned token means the upstream is exhausted. Transient upstream errors
// (429, 5xx) are retried with backoff; a persistent failure aborts with the
// upstream message preserved.
func (yt *YouTubeClient) FetchCommentPage(ctx context.Context, videoID, pageToken string, pageSize int) ([]models.RawComment, string, error) {
	if yt.APIKey == "" {
		return nil, "", ErrMissingAPIKey
	}

	if pageSize > YOUTUBE_MAX_PAGE_SIZE {
		pageSize = YOUTUBE_MAX_PAGE_SIZE
	}

	endpoint, err := url.Parse(yt.BaseURL + "/commentThreads")
	if err != nil {
		return nil, "", fmt.Errorf("[YouTubeClient] Failed to parse URL: %w", err)
	}
	queryParams := endpoint.Query()
	queryParams.Set("part", "snippet")
	queryParams.Set("videoId", videoID)
	queryParams.Set("maxResults", strconv.Itoa(pageSize))
	queryParams.Set("order", "relevance")
	queryParams.Set("key", yt.APIKey)
	if pageToken != "" {
		queryParams.Set("pageToken", pageToken)
	}
	endpoint.RawQuery = queryParams.Encode()

	var lastErr error
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, "", err
		}
		req.Header.Set("User-Agent", USER_AGENT)

		res, err := yt.Client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("[YouTubeClient] Request failed: %w", err)
			slog.Warn("[YouTubeClient] Request failed, retrying",
				slog.Int("attempt", attempt), slog.String("error", err.Error()))
		} else {
			comments, nextToken, retryable, err := yt.decodePageResponse(res)
			if err == nil {
				return comments, nextToken, nil
			}
			if !retryable {
				return nil, "", err
			}
			lastErr = err
			slog.Warn("[YouTubeClient] Transient upstream error, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff),
				slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}
	}

	slog.Error("[YouTubeClient] Failed after max retries")
	return nil, "", lastErr
}

func (yt *YouTubeClient) decodePageResponse(res *http.Response) ([]models.RawComment, string, bool, error) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", false, fmt.Errorf("[YouTubeClient] Failed to read response body: %w", err)
	}

	switch {
	case res.StatusCode == http.StatusOK:
		var response models.YouTubeCommentThreadsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, "", false, fmt.Errorf("[YouTubeClient] Failed to parse JSON response: %w", err)
		}

		comments := make([]models.RawComment, 0, len(response.Items))
		for _, item := range response.Items {
			comments = append(comments, item.ToRawComment())
		}
		return comments, response.NextPageToken, false, nil

	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500:
		return nil, "", true, fmt.Errorf("[YouTubeClient] Upstream error (status %d): %s",
			res.StatusCode, upstreamErrorMessage(body))

	default:
		return nil, "", false, fmt.Errorf("[YouTubeClient] Error fetching comments (status %d): %s",
			res.StatusCode, upstreamErrorMessage(body))
	}
}

func upstreamErrorMessage(body []byte) string {
	var apiErr models.YouTubeErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(body)
}

// FetchComments accumulates relevance-ordered comments until maxCount is
// reached or the upstream runs out of pages. Each page request asks for no
// more than what is still missing. Any page failure aborts the whole fetch.
func (yt *YouTubeClient) FetchComments(ctx context.Context, videoID string, maxCount int) ([]models.RawComment, error) {
	if yt.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var comments []models.RawComment
	pageToken := ""

	for len(comments) < maxCount {
		pageSize := maxCount - len(comments)

		page, nextToken, err := yt.FetchCommentPage(ctx, videoID, pageToken, pageSize)
		if err != nil {
			return nil, err
		}

		comments = append(comments, page...)
		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	if len(comments) > maxCount {
		comments = comments[:maxCount]
	}

	return comments, nil
}

// FetchAllComments walks every page until the upstream stops returning a
// cursor. There is no internal cap: on heavily commented videos this can
// take a long time and burn API quota, so callers wanting a bound should use
// FetchComments instead.
func (yt *YouTubeClient) FetchAllComments(ctx context.Context, videoID string) ([]models.RawComment, error) {
	if yt.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var comments []models.RawComment
	pageToken := ""

	for {
		page, nextToken, err := yt.FetchCommentPage(ctx, videoID, pageToken, YOUTUBE_MAX_PAGE_SIZE)
		if err != nil {
			return nil, err
		}

		comments = append(comments, page...)
		slog.Info("[YouTubeClient] Fetched comments so far", slog.Int("count", len(comments)))

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	slog.Info("[YouTubeClient] Finished fetching", slog.Int("total", len(comments)))
	return comments, nil
}
