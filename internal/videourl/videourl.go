package videourl

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoVideoID reports that no 11-character video identifier could be derived
// from the given URL. Callers must check for it before fetching.
var ErrNoVideoID = errors.New("no video ID found in URL")

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

var validVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ResolveVideoID extracts the canonical video identifier from the watch,
// short-link, or embed URL forms. It falls back to locating a v= query
// parameter manually before giving up with ErrNoVideoID.
func ResolveVideoID(url string) (string, error) {
	if url == "" {
		return "", ErrNoVideoID
	}

	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}

	if idx := strings.Index(url, "v="); idx != -1 {
		id := url[idx+2:]
		if amp := strings.IndexByte(id, '&'); amp != -1 {
			id = id[:amp]
		}
		if validVideoID.MatchString(id) {
			return id, nil
		}
	}

	return "", ErrNoVideoID
}
