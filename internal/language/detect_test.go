package language

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubesense/internal/models"
)

func TestDetectLanguage_English(t *testing.T) {
	got := DetectLanguage("This is a perfectly ordinary English sentence about a video I watched yesterday.")
	assert.Equal(t, models.LanguageEnglish, got)
}

func TestDetectLanguage_Spanish(t *testing.T) {
	got := DetectLanguage("Me encanta esta canción, la música española siempre me hace muy feliz cuando la escucho.")
	assert.NotEqual(t, models.LanguageEnglish, got)
	assert.NotEqual(t, models.LanguageUnknown, got)
}

func TestDetectLanguage_EmptyAndWhitespace(t *testing.T) {
	assert.Equal(t, models.LanguageUnknown, DetectLanguage(""))
	assert.Equal(t, models.LanguageUnknown, DetectLanguage("   \t\n"))
}

func TestDetectLanguage_NoAlphanumeric(t *testing.T) {
	texts := []string{
		"😂😂😂",
		"!!! ???",
		"❤️🔥👍",
		"---___---",
	}

	for _, text := range texts {
		assert.Equal(t, models.LanguageUnknown, DetectLanguage(text), "%q", text)
	}
}
