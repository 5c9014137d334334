package models

import "time"

// Shapes for the YouTube Data API v3 commentThreads.list response.
// Only the snippet fields the pipeline consumes are mapped.

type YouTubeCommentThreadsResponse struct {
	Items         []YouTubeCommentThread `json:"items"`
	NextPageToken string                 `json:"nextPageToken"`
}

type YouTubeCommentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			Snippet YouTubeCommentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
	} `json:"snippet"`
}

type YouTubeCommentSnippet struct {
	AuthorDisplayName string    `json:"authorDisplayName"`
	TextDisplay       string    `json:"textDisplay"`
	LikeCount         int       `json:"likeCount"`
	PublishedAt       time.Time `json:"publishedAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type YouTubeErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (t YouTubeCommentThread) ToRawComment() RawComment {
	s := t.Snippet.TopLevelComment.Snippet
	return RawComment{
		ID:          t.ID,
		Author:      s.AuthorDisplayName,
		Text:        s.TextDisplay,
		PublishedAt: s.PublishedAt,
		UpdatedAt:   s.UpdatedAt,
		LikeCount:   s.LikeCount,
	}
}
