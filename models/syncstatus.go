package models

// StatusKey identifies one of the two boolean article statuses that are
// synchronized with the remote backend.
type StatusKey string

const (
	// StatusKeyRead marks an article as read/unread.
	StatusKeyRead StatusKey = "read"

	// StatusKeyStarred marks an article as starred/unstarred.
	StatusKeyStarred StatusKey = "starred"
)

// SyncStatus is a desired status value for one article that has not yet
// been confirmed sent to the remote backend. It is uniquely identified by
// (ArticleID, Key); inserting a new status for the same key overwrites
// the flag.
//
// Lifecycle: created whenever a user action or remote reconciliation
// changes a status; read by the send-to-remote task; deleted once the
// remote backend acknowledges it; reset to pending (not deleted) if the
// remote call fails so that it is retried on the next cycle.
type SyncStatus struct {
	// ArticleID is the opaque identifier of the article the status
	// applies to.
	ArticleID string `json:"article_id"`

	// Key selects which boolean status the record describes.
	Key StatusKey `json:"key"`

	// Flag is the desired value for Key.
	Flag bool `json:"flag"`
}

// MarkAction is the remote mutation derived from a batch of SyncStatus
// records sharing the same (Key, Flag) pair.
type MarkAction string

const (
	MarkActionRead      MarkAction = "markRead"
	MarkActionUnread    MarkAction = "markUnread"
	MarkActionStarred   MarkAction = "markStarred"
	MarkActionUnstarred MarkAction = "markUnstarred"
)

// ActionForStatus maps a (key, flag) pair to the MarkAction the backend
// adapter must perform to propagate it.
func ActionForStatus(key StatusKey, flag bool) MarkAction {
	switch {
	case key == StatusKeyRead && flag:
		return MarkActionRead
	case key == StatusKeyRead && !flag:
		return MarkActionUnread
	case key == StatusKeyStarred && flag:
		return MarkActionStarred
	default:
		return MarkActionUnstarred
	}
}

// TableName returns the name of the database table associated with the
// SyncStatus model.
func (s *SyncStatus) TableName() string {
	return "sync_statuses"
}
