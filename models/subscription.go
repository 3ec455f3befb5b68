package models

// Subscription is one feed in a backend's flat subscription list,
// together with the collections/tags the remote places it in.
type Subscription struct {
	// ExternalID is the remote identifier of the subscription.
	ExternalID string `json:"external_id"`

	// Title is the remote title of the feed.
	Title string `json:"title,omitempty"`

	// URL is the subscription URL.
	URL string `json:"url"`

	// HomePageURL is the feed's website, when known.
	HomePageURL string `json:"home_page_url,omitempty"`

	// CollectionIDs lists the remote collections/tags this
	// subscription belongs to. Empty means the account root.
	CollectionIDs []string `json:"collection_ids,omitempty"`
}

// FeedsAndTags is the combined answer of a backend's subscription-list
// and tag-list endpoints.
type FeedsAndTags struct {
	// Subscriptions is the account's flat subscription list.
	Subscriptions []Subscription `json:"subscriptions"`

	// TagIDs lists the remote tag identifiers, including tags that
	// currently hold no feeds.
	TagIDs []string `json:"tag_ids,omitempty"`
}

// FeedCandidate is one result of a remote feed search/discovery call.
type FeedCandidate struct {
	// URL is the discovered feed URL to subscribe to.
	URL string `json:"url"`

	// Title is the discovered feed's title, when reported.
	Title string `json:"title,omitempty"`

	// HomePageURL is the site the feed belongs to, when reported.
	HomePageURL string `json:"home_page_url,omitempty"`
}
