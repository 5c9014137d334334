package sentiment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsToxic_Keywords(t *testing.T) {
	for _, keyword := range toxicityKeywords {
		text := fmt.Sprintf("well honestly %s if you ask me", keyword)
		assert.True(t, IsToxic(text), "keyword %q should flag", keyword)
	}
}

func TestIsToxic_CaseInsensitive(t *testing.T) {
	assert.True(t, IsToxic("this is STUPID"))
	assert.True(t, IsToxic("What Garbage Content"))
	assert.True(t, IsToxic("I HATE this"))
}

func TestIsToxic_Patterns(t *testing.T) {
	texts := []string{
		"you are a moron",
		"you are stupid",
		"wow kys already",
		"just die",
	}

	for _, text := range texts {
		assert.True(t, IsToxic(text), text)
	}
}

func TestIsToxic_CleanText(t *testing.T) {
	texts := []string{
		"This video taught me so much, thank you for sharing",
		"Lovely editing and the music fits perfectly",
		"",
	}

	for _, text := range texts {
		assert.False(t, IsToxic(text), text)
	}
}

func TestIsToxic_NoNegationHandling(t *testing.T) {
	// Substring matching has no context window; this is a documented
	// limitation, not a defect.
	assert.True(t, IsToxic("this is not stupid at all"))
}
