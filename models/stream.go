package models

import "time"

// StreamResource names a remote ID stream that can be paged through with
// a continuation cursor.
type StreamResource string

const (
	// StreamAll is the stream of every article ID the account can see
	// (backends bound this, typically to the last 31 days).
	StreamAll StreamResource = "all"

	// StreamUnread is the stream of unread article IDs.
	StreamUnread StreamResource = "unread"

	// StreamStarred is the stream of starred article IDs.
	StreamStarred StreamResource = "starred"
)

// StreamIDs is one page of an article-ID stream.
type StreamIDs struct {
	// IDs are the article identifiers carried by this page.
	IDs []string `json:"ids"`

	// Continuation is the opaque cursor for the next page. An empty
	// continuation is the sole termination signal: it means this page
	// is the last one.
	Continuation string `json:"continuation,omitempty"`
}

// StreamQuery bounds a stream request.
type StreamQuery struct {
	// Resource selects the stream to page through.
	Resource StreamResource

	// Continuation is the cursor returned by the previous page, empty
	// on the first request.
	Continuation string

	// NewerThan, when non-nil, restricts the stream to articles changed
	// after the given instant.
	NewerThan *time.Time

	// UnreadOnly, when true, restricts the stream to unread articles.
	UnreadOnly bool
}
