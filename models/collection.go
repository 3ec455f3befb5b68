package models

// Collection is a remote service's grouping construct (a Feedly
// collection, a Reader-API tag, a cloud container record). It is
// mirrored locally as a Folder.
type Collection struct {
	// ID is the remote identifier of the collection.
	ID string `json:"id"`

	// Label is the display name of the collection.
	Label string `json:"label"`

	// Feeds lists the feeds the remote service currently places in this
	// collection.
	Feeds []CollectionFeed `json:"feeds"`
}

// CollectionFeed is one feed entry inside a remote collection listing.
type CollectionFeed struct {
	// ID is the remote feed identifier (for stream-style backends this
	// doubles as the subscription locator, e.g. "feed/https://…").
	ID string `json:"id"`

	// Title is the remote title of the feed.
	Title string `json:"title"`

	// URL is the subscription URL when the backend reports it
	// separately from ID.
	URL string `json:"url,omitempty"`

	// Website is the feed's home page, when known.
	Website string `json:"website,omitempty"`
}

// ChangeRecordType discriminates records in an incremental change feed.
type ChangeRecordType string

const (
	// ChangeRecordFeed is a feed create/update/delete record.
	ChangeRecordFeed ChangeRecordType = "feed"

	// ChangeRecordContainer is a folder/container create/update/delete
	// record.
	ChangeRecordContainer ChangeRecordType = "container"
)

// ChangeRecord is one entry of a cloud backend's incremental change
// feed. Records arrive in arbitrary order; in particular a feed record
// may reference a container record that appears later in the same batch.
type ChangeRecord struct {
	// Type tells whether the record describes a feed or a container.
	Type ChangeRecordType `json:"type"`

	// ExternalID is the remote identifier of the changed object.
	ExternalID string `json:"external_id"`

	// Name is the object's display name (container label or feed
	// title).
	Name string `json:"name,omitempty"`

	// EditedName carries the user's feed-name override, feed records
	// only.
	EditedName string `json:"edited_name,omitempty"`

	// URL is the subscription URL, feed records only.
	URL string `json:"url,omitempty"`

	// HomePageURL is the feed's website, feed records only.
	HomePageURL string `json:"home_page_url,omitempty"`

	// ContainerExternalIDs lists the containers a feed record belongs
	// to. Feed records only.
	ContainerExternalIDs []string `json:"container_external_ids,omitempty"`

	// IsAccount is set on the synthetic container record representing
	// the account root; such records are not mirrored as folders.
	IsAccount bool `json:"is_account,omitempty"`
}
