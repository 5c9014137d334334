package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/tubesense/internal/models"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

const (
	VALKEY_ANALYSIS_KEY_PREFIX = "tubesense:analysis:"
	VALKEY_ANALYSIS_TTL        = 24 * time.Hour
)

type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

func newValkeyConn() (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", res.Error())
	}

	return client, nil
}

func InitValkey() error {
	var initErr error
	valkeyOnce.Do(func() {
		client, err := newValkeyConn()
		if err != nil {
			initErr = err
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return initErr
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// GetValkeyClient returns the cache client, or nil when caching is disabled.
func GetValkeyClient() *ValkeyClient {
	return valkeyInstance
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	vc.Client.Close()

	client, err := newValkeyConn()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed", slog.String("error", err.Error()))
		return
	}

	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
	vc.Client = client
}

// CacheSummary stores a finished analysis summary keyed by video ID so that
// repeat requests for the same video skip the fetch + enrichment run.
func (vc *ValkeyClient) CacheSummary(ctx context.Context, videoID string, summary models.AnalysisSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("[ValkeyClient] Failed to marshal summary: %w", err)
	}

	key := VALKEY_ANALYSIS_KEY_PREFIX + videoID
	completed := []valkey.Completed{
		vc.Client.B().Set().Key(key).Value(string(data)).Build(),
		vc.Client.B().Expire().Key(key).Seconds(int64(VALKEY_ANALYSIS_TTL.Seconds())).Build(),
	}

	responses := vc.DoMultiWithRetry(ctx, completed, 3)
	for _, res := range responses {
		if err := res.Error(); err != nil {
			return err
		}
	}

	slog.Info("[ValkeyClient] Cached analysis summary",
		slog.String("video_id", videoID))
	return nil
}

// GetCachedSummary returns the cached summary for a video, if any.
func (vc *ValkeyClient) GetCachedSummary(ctx context.Context, videoID string) (*models.AnalysisSummary, bool) {
	key := VALKEY_ANALYSIS_KEY_PREFIX + videoID
	res := vc.DoWithRetry(ctx, vc.Client.B().Get().Key(key).Build(), 3)

	if err := res.Error(); err != nil {
		if isConnectionError(err) {
			vc.recreateClient()
		}
		return nil, false
	}

	data, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var summary models.AnalysisSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		slog.Warn("[ValkeyClient] Failed to unmarshal cached summary",
			slog.String("video_id", videoID), slog.String("error", err.Error()))
		return nil, false
	}

	return &summary, true
}

func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.Client.DoMulti(ctx, completed...)
		hasErr := false
		for _, r := range results {
			if r.Error() != nil {
				hasErr = true
				slog.Warn("[ValkeyClient] Do Multi failed",
					slog.Int("attempt", i+1),
					slog.String("error", r.Error().Error()))
				if isConnectionError(r.Error()) {
					vc.recreateClient()
				}
				break
			}
		}
		if !hasErr {
			break
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func (vc *ValkeyClient) DoWithRetry(ctx context.Context, completed valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.Client.Do(ctx, completed)
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
