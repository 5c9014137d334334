package sentiment

import (
	"regexp"
	"strings"
)

// Keyword blocklist for toxicity flagging. Matching is plain substring,
// case-insensitive; a single hit is enough. Known limitation: no negation
// handling, so "not stupid" still flags.
var toxicityKeywords = []string{
	"hate", "kill", "stupid", "idiot", "dumb", "worthless", "disgusting",
	"disgust", "shut up", "shutup", "shut your", "go to hell", "damn",
	"retard", "retarded", "moron", "moronic", "crap", "trash", "garbage",
	"useless", "pathetic", "awful", "terrible", "horrible", "horrid",
}

var toxicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\byou\s+are\s+(a\s+)?(idiot|stupid|dumb|moron|retard)`),
	regexp.MustCompile(`\bfuck\b`),
	regexp.MustCompile(`\bshit\b`),
	regexp.MustCompile(`\bdie\b`),
	regexp.MustCompile(`\bkys\b`),
}

// IsToxic reports whether text contains any blocklisted keyword or matches
// any toxic pattern.
func IsToxic(text string) bool {
	lower := strings.ToLower(text)

	for _, keyword := range toxicityKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	for _, pattern := range toxicPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	return false
}
