// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingStatusRepository is the durable queue of local status changes
// (read/starred) not yet confirmed sent to the remote backend. It is
// the exclusive owner of [models.SyncStatus] records: the sync
// coordinator never caches them.
//
// The send cycle is: SelectForProcessing marks records in flight and
// returns them; DeleteSelected removes the records the backend
// acknowledged; ResetSelected returns failed records to the pending set
// so they are retried on the next cycle. Statuses are never silently
// dropped.
type PendingStatusRepository interface {
	// InsertStatuses upserts the given statuses. A status with the same
	// (ArticleID, Key) as an existing record overwrites its flag and
	// returns the record to the pending state.
	InsertStatuses(ctx context.Context, statuses []models.SyncStatus) error

	// SelectForProcessing marks every pending status as in flight and
	// returns them.
	SelectForProcessing(ctx context.Context) ([]models.SyncStatus, error)

	// PendingCount returns the number of statuses not yet acknowledged,
	// including ones currently in flight.
	PendingCount(ctx context.Context) (int, error)

	// PendingArticleIDs returns the article IDs that have an
	// unacknowledged status for the given key. The reconciler uses this
	// set to keep stale remote snapshots from clobbering local changes.
	PendingArticleIDs(ctx context.Context, key models.StatusKey) (map[string]struct{}, error)

	// DeleteSelected removes in-flight statuses for the given article
	// IDs and key after the backend acknowledged them.
	DeleteSelected(ctx context.Context, ids []string, key models.StatusKey) error

	// ResetSelected returns in-flight statuses for the given article
	// IDs and key to the pending state after a failed send.
	ResetSelected(ctx context.Context, ids []string, key models.StatusKey) error

	// DeleteAll clears the queue. Used when the account is deleted.
	DeleteAll(ctx context.Context) error
}

// LocalRepository is the local mirror of the account's folders, feeds,
// articles and article statuses. Writes are serialized per account by
// the underlying [*DB]; reads may run concurrently with reads.
type LocalRepository interface {
	// Folders returns every local folder.
	Folders(ctx context.Context) ([]models.Folder, error)

	// EnsureFolder returns the folder with the given name, creating it
	// when absent.
	EnsureFolder(ctx context.Context, name string) (models.Folder, error)

	// SetFolderExternalID records the remote counterpart's ID on the
	// named folder.
	SetFolderExternalID(ctx context.Context, name, externalID string) error

	// FolderByExternalID returns the folder mirroring the given remote
	// collection, or ErrFolderNotFound.
	FolderByExternalID(ctx context.Context, externalID string) (models.Folder, error)

	// RenameFolder changes a folder's name, carrying its feed
	// memberships along.
	RenameFolder(ctx context.Context, oldName, newName string) error

	// DeleteFolder removes the folder and its membership rows. Feeds
	// are never deleted as a side effect; the caller orphans them to
	// the account root first.
	DeleteFolder(ctx context.Context, name string) error

	// Feeds returns every local feed.
	Feeds(ctx context.Context) ([]models.Feed, error)

	// FeedByID returns the feed with the given stable local ID, or
	// ErrFeedNotFound.
	FeedByID(ctx context.Context, feedID string) (models.Feed, error)

	// FeedByExternalID returns the feed mirroring the given remote
	// subscription, or ErrFeedNotFound.
	FeedByExternalID(ctx context.Context, externalID string) (models.Feed, error)

	// UpsertFeed creates or updates a feed record keyed by FeedID.
	UpsertFeed(ctx context.Context, feed models.Feed) error

	// DeleteFeed removes the feed, its membership rows and its
	// articles.
	DeleteFeed(ctx context.Context, feedID string) error

	// AddFeedToFolder places the feed in the named folder. The empty
	// folder name is the account root.
	AddFeedToFolder(ctx context.Context, feedID, folderName string) error

	// RemoveFeedFromFolder detaches the feed from the named folder.
	RemoveFeedFromFolder(ctx context.Context, feedID, folderName string) error

	// FeedIDsInFolder lists the feeds in the named folder ("" = root).
	FeedIDsInFolder(ctx context.Context, folderName string) ([]string, error)

	// FolderNamesForFeed lists the folders containing the feed. The
	// account root is reported as the empty string.
	FolderNamesForFeed(ctx context.Context, feedID string) ([]string, error)

	// DeleteAllFeedsAndFolders tears down the account's local feed and
	// folder mirror, forcing a clean re-sync. Reaction to a corrupt
	// remote state.
	DeleteAllFeedsAndFolders(ctx context.Context) error

	// ArticleIDsWithStatus returns the IDs whose local status for key
	// equals flag. The unread set is (StatusKeyRead, false).
	ArticleIDsWithStatus(ctx context.Context, key models.StatusKey, flag bool) (map[string]struct{}, error)

	// EnsureArticleStatuses creates missing local status rows
	// (read=false) for the given article IDs.
	EnsureArticleStatuses(ctx context.Context, ids []string) error

	// MarkArticles sets the local status for the given article IDs.
	MarkArticles(ctx context.Context, ids []string, key models.StatusKey, flag bool) error

	// MissingArticleIDs returns IDs that have a status row but no
	// downloaded article content yet.
	MissingArticleIDs(ctx context.Context) ([]string, error)

	// UpsertArticles writes downloaded article payloads.
	UpsertArticles(ctx context.Context, articles []models.Article) error

	// SyncState returns the persisted engine state for key ("" when
	// unset); SetSyncState stores it. Used for the last-successful
	// fetch timestamps and the change-feed cursor.
	SyncState(ctx context.Context, key string) (string, error)
	SetSyncState(ctx context.Context, key, value string) error
}
