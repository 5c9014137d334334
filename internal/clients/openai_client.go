package clients

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIRequestTimeout = 60 * time.Second

var (
	aiClientInstance *AIClient
	aiClientOnce     sync.Once
)

// ErrMissingOpenAIKey is a configuration error raised before any request.
var ErrMissingOpenAIKey = errors.New("[AIClient] Missing OPENAI_API_KEY in environment variables")

type AIClient struct {
	Client *openai.Client
}

func GetAIClient() (*AIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingOpenAIKey
	}

	aiClientOnce.Do(func() {
		aiClientInstance = &AIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithRequestTimeout(openAIRequestTimeout),
			),
		}
		slog.Info("[AIClient] OpenAI client initialized",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return aiClientInstance, nil
}
