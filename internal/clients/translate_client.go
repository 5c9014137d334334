package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TranslateClient talks to the unofficial Google translate endpoint (the
// same backend deep-translator wraps). No credential is required.
const TRANSLATE_API_ENDPOINT = "https://translate.googleapis.com/translate_a/single"

var (
	translateInstance *TranslateClient
	translateOnce     sync.Once
)

type TranslateClient struct {
	Client  *http.Client
	BaseURL string
}

func GetTranslateClient() *TranslateClient {
	translateOnce.Do(func() {
		translateInstance = &TranslateClient{
			Client:  &http.Client{Timeout: 15 * time.Second},
			BaseURL: TRANSLATE_API_ENDPOINT,
		}
	})
	return translateInstance
}

// Translate converts text to English with source language auto-detection.
// Callers are expected to treat any error or empty result as "keep the
// original text"; this method just reports what the backend said.
func (tc *TranslateClient) Translate(ctx context.Context, text string) (string, error) {
	endpoint, err := url.Parse(tc.BaseURL)
	if err != nil {
		return "", fmt.Errorf("[TranslateClient] Failed to parse URL: %w", err)
	}
	queryParams := endpoint.Query()
	queryParams.Set("client", "gtx")
	queryParams.Set("sl", "auto")
	queryParams.Set("tl", "en")
	queryParams.Set("dt", "t")
	queryParams.Set("q", text)
	endpoint.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	res, err := tc.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("[TranslateClient] Request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("[TranslateClient] Unexpected status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("[TranslateClient] Failed to read response body: %w", err)
	}

	return parseTranslateResponse(body)
}

// parseTranslateResponse decodes the endpoint's nested-array payload:
// [[["translated","original",...], ...], ...]. The first element of each
// sentence array is the translated segment.
func parseTranslateResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("[TranslateClient] Failed to parse JSON response: %w", err)
	}
	if len(payload) == 0 {
		return "", nil
	}

	sentences, ok := payload[0].([]any)
	if !ok {
		return "", nil
	}

	var sb strings.Builder
	for _, sentence := range sentences {
		segments, ok := sentence.([]any)
		if !ok || len(segments) == 0 {
			continue
		}
		if translated, ok := segments[0].(string); ok {
			sb.WriteString(translated)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
