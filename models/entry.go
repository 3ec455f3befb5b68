package models

import "time"

// Entry is one remote article payload as returned by the backend's
// entries endpoint.
type Entry struct {
	// ID is the backend's opaque identifier for the article.
	ID string `json:"id"`

	// FeedExternalID identifies the feed the entry belongs to.
	FeedExternalID string `json:"feed_external_id"`

	// Title is the article title; may be empty.
	Title string `json:"title,omitempty"`

	// Author is the article byline, when reported.
	Author string `json:"author,omitempty"`

	// ContentHTML is the article body as HTML.
	ContentHTML string `json:"content_html,omitempty"`

	// Summary is the plain-text or HTML summary, when reported.
	Summary string `json:"summary,omitempty"`

	// ExternalURL is the canonical link to the article.
	ExternalURL string `json:"external_url,omitempty"`

	// Published is the publication timestamp, when reported.
	Published *time.Time `json:"published,omitempty"`

	// Updated is the last-modified timestamp, when reported.
	Updated *time.Time `json:"updated,omitempty"`

	// Unread reports the remote unread flag at fetch time.
	Unread bool `json:"unread"`

	// Starred reports the remote starred flag at fetch time.
	Starred bool `json:"starred"`
}

// Article is the local representation of a downloaded entry, ready to be
// written to the article store.
type Article struct {
	// ArticleID is the stable local identifier, equal to the remote
	// entry ID.
	ArticleID string `json:"article_id"`

	// FeedID is the local feed the article belongs to.
	FeedID string `json:"feed_id"`

	// Title, Author, ContentHTML, ExternalURL mirror the entry fields.
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	ContentHTML string `json:"content_html,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`

	// Published is the publication timestamp, when known.
	Published *time.Time `json:"published,omitempty"`
}
