package models

// Folder mirrors a remote collection or tag locally. Folders group feeds
// below the account root.
type Folder struct {
	// Name is the display name of the folder, kept equal to the remote
	// collection's label by the folder mirror.
	Name string `json:"name"`

	// ExternalID is the identifier of the remote counterpart. It is
	// empty until the remote collection exists; the mirroring algorithm
	// tolerates transient empty values.
	ExternalID string `json:"external_id,omitempty"`
}
