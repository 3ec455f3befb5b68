package models

// Feed is a local subscription. A feed may belong to zero folders (the
// account root), one folder, or — for backends that allow it — several.
type Feed struct {
	// FeedID is the stable local identifier, derived from the feed URL
	// or the remote feed ID depending on the backend.
	FeedID string `json:"feed_id"`

	// URL is the feed's subscription URL.
	URL string `json:"url"`

	// Name is the title reported by the remote service or the feed
	// itself.
	Name string `json:"name,omitempty"`

	// EditedName is the user's local override of Name, if any.
	EditedName string `json:"edited_name,omitempty"`

	// ExternalID is the remote service's identifier for this feed.
	// Empty until the remote counterpart exists.
	ExternalID string `json:"external_id,omitempty"`

	// HomePageURL is the website the feed links to, when known.
	HomePageURL string `json:"home_page_url,omitempty"`
}

// UnclaimedFeed is a feed-to-folder relationship received before its
// target folder exists locally. Remote change feeds may deliver a feed
// record ahead of the folder record it references; the folder mirror
// buffers these and materializes them once the folder arrives.
type UnclaimedFeed struct {
	// URL is the subscription URL of the pending feed.
	URL string

	// Name is the remote title of the pending feed.
	Name string

	// EditedName is the user's name override carried in the remote
	// record.
	EditedName string

	// HomePageURL is the feed's website, when known.
	HomePageURL string

	// FeedExternalID is the remote identifier the feed will carry once
	// created.
	FeedExternalID string
}
