// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote feed services go-feed-sync can synchronize against.
//
// The primary abstraction is [BackendAdapter], which decouples the sync
// orchestration layer from any particular remote protocol. The package
// ships four implementations: a proprietary sync cloud
// ([NewCloudSyncAdapter]), a Feedbin-style REST aggregator
// ([NewRESTAdapter]), a Google-Reader-API-compatible service
// ([NewReaderAPIAdapter]) and a local no-op backend ([NewLocalAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-feed-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with one remote
// feed service. Implementations are responsible for serialisation,
// authentication header management, request pagination parameters, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type BackendAdapter interface {
	// GetCollections returns every collection/tag the account has on
	// the remote service, each with the feeds the service currently
	// places inside it.
	GetCollections(ctx context.Context) ([]models.Collection, error)

	// GetFeedsAndTags returns the flat subscription list together with
	// the remote tag identifiers. Backends whose native shape is a
	// subscription list (the Reader API family) answer this directly;
	// collection-shaped backends synthesize it from GetCollections.
	GetFeedsAndTags(ctx context.Context) (models.FeedsAndTags, error)

	// GetStreamIDs returns one page of the article-ID stream selected
	// by q. An empty continuation in the response means the stream is
	// exhausted; a non-empty one must be passed back verbatim to get
	// the next page.
	GetStreamIDs(ctx context.Context, q models.StreamQuery) (models.StreamIDs, error)

	// GetEntries fetches full article payloads for the given IDs. The
	// caller must respect EntryBatchLimit; entries that fail to parse
	// remotely are dropped from the result, not reported as errors.
	GetEntries(ctx context.Context, ids []string) ([]models.Entry, error)

	// MarkEntries applies one status action to the given article IDs.
	// When only some IDs fail, implementations return a
	// [*PartialBatchError] listing the failed IDs so the caller can
	// retry exactly those.
	MarkEntries(ctx context.Context, ids []string, action models.MarkAction) error

	// CreateCollection makes a collection with the given label and
	// returns the remote record, including its assigned ID. Creating a
	// collection whose label already exists returns the existing one.
	CreateCollection(ctx context.Context, label string) (models.Collection, error)

	// RenameCollection changes a collection's label and returns the
	// updated record.
	RenameCollection(ctx context.Context, id, label string) (models.Collection, error)

	// DeleteCollection removes the collection. Feeds inside it are not
	// unsubscribed by the remote; the caller is responsible for moving
	// them first.
	DeleteCollection(ctx context.Context, id string) error

	// AddFeedToCollection subscribes the feed (when necessary) and
	// places it in the given collection. It returns the collection's
	// updated feed list. Subscribing to an already-subscribed feed
	// returns [ErrAlreadySubscribed].
	AddFeedToCollection(ctx context.Context, feedURL, feedExternalID, collectionID string) ([]models.CollectionFeed, error)

	// RemoveFeedFromCollection detaches the feed from the collection.
	// When the feed's last collection is removed, backends that do not
	// keep root-level subscriptions also unsubscribe it.
	RemoveFeedFromCollection(ctx context.Context, feedExternalID, collectionID string) error

	// SearchFeed asks the remote service to discover feeds for the
	// given URL (or site URL) and returns candidate subscriptions,
	// best match first. An empty result is not an error.
	SearchFeed(ctx context.Context, url string) ([]models.FeedCandidate, error)

	// RefreshSession renews expired credentials (OAuth token refresh,
	// ClientLogin re-auth). Called once when a request fails with
	// [ErrUnauthorized] before the request is retried.
	RefreshSession(ctx context.Context) error

	// Logout revokes the remote session and clears any cached
	// credentials held by the adapter.
	Logout(ctx context.Context) error

	// EntryBatchLimit is the maximum number of article IDs one
	// GetEntries or MarkEntries call may carry for this backend.
	EntryBatchLimit() int
}

// ChangeFeedProvider is implemented by backends that expose an
// incremental change feed (the proprietary sync cloud). The records may
// arrive child-before-parent; the folder mirror's incremental entry
// point handles the reordering.
type ChangeFeedProvider interface {
	// GetChanges returns the records changed since the given cursor,
	// the external IDs deleted since then, and the cursor to persist
	// for the next call.
	GetChanges(ctx context.Context, cursor string) (changed []models.ChangeRecord, deleted []models.ChangeRecord, next string, err error)
}
