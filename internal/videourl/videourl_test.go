package videourl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVideoID_SupportedForms(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
	}

	for _, url := range urls {
		got, err := ResolveVideoID(url)
		assert.NoError(t, err, url)
		assert.Equal(t, id, got, url)
	}
}

func TestResolveVideoID_VParameterFallback(t *testing.T) {
	got, err := ResolveVideoID("https://m.youtube.example/player?v=abc_DEF-123")
	assert.NoError(t, err)
	assert.Equal(t, "abc_DEF-123", got)
}

func TestResolveVideoID_NotFound(t *testing.T) {
	urls := []string{
		"",
		"https://example.com/watch",
		"https://www.youtube.com/watch?v=tooshort",
		"not a url at all",
	}

	for _, url := range urls {
		_, err := ResolveVideoID(url)
		assert.ErrorIs(t, err, ErrNoVideoID, url)
	}
}
