// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gilliek/go-opml/opml"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/models"
)

// SendPendingStatuses pushes every queued status change to the backend.
// Acknowledged statuses are deleted; failed ones are reset to pending
// and retried on the next cycle, never dropped.
func (c *SyncCoordinator) SendPendingStatuses(ctx context.Context) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	return c.sendPendingStatuses(ctx)
}

// statusGroup keys one MarkEntries batch: all statuses sharing a
// (key, flag) pair translate to the same remote action.
type statusGroup struct {
	key  models.StatusKey
	flag bool
}

func (c *SyncCoordinator) sendPendingStatuses(ctx context.Context) error {
	statuses, err := c.statuses.SelectForProcessing(ctx)
	if err != nil {
		return fmt.Errorf("select pending statuses: %w", err)
	}
	if len(statuses) == 0 {
		return nil
	}

	groups := make(map[statusGroup][]string)
	order := make([]statusGroup, 0, 4)
	for _, st := range statuses {
		g := statusGroup{key: st.Key, flag: st.Flag}
		if _, seen := groups[g]; !seen {
			order = append(order, g)
		}
		groups[g] = append(groups[g], st.ArticleID)
	}

	for i, g := range order {
		if err = c.sendStatusGroup(ctx, g, groups[g]); err != nil {
			// Nothing may stay marked in flight: later groups go back
			// to pending so the next cycle retries them.
			for _, rest := range order[i+1:] {
				if resetErr := c.statuses.ResetSelected(ctx, groups[rest], rest.key); resetErr != nil {
					c.log.Err(resetErr).Msg("resetting unsent statuses failed")
				}
			}
			return err
		}
	}
	return nil
}

func (c *SyncCoordinator) sendStatusGroup(ctx context.Context, g statusGroup, ids []string) error {
	action := models.ActionForStatus(g.key, g.flag)
	batches := chunkStrings(ids, c.backend.EntryBatchLimit())
	for i, batch := range batches {
		err := c.withSessionRetry(ctx, func(ctx context.Context) error {
			return c.backend.MarkEntries(ctx, batch, action)
		})

		var partial *adapter.PartialBatchError
		switch {
		case err == nil:
			if err = c.statuses.DeleteSelected(ctx, batch, g.key); err != nil {
				return fmt.Errorf("delete acknowledged statuses: %w", err)
			}
		case errors.As(err, &partial):
			failed := make(map[string]struct{}, len(partial.FailedIDs))
			for _, id := range partial.FailedIDs {
				failed[id] = struct{}{}
			}
			succeeded := make([]string, 0, len(batch))
			for _, id := range batch {
				if _, bad := failed[id]; !bad {
					succeeded = append(succeeded, id)
				}
			}
			if err = c.statuses.DeleteSelected(ctx, succeeded, g.key); err != nil {
				return fmt.Errorf("delete acknowledged statuses: %w", err)
			}
			if err = c.statuses.ResetSelected(ctx, partial.FailedIDs, g.key); err != nil {
				return fmt.Errorf("reset failed statuses: %w", err)
			}
			c.log.Warn().
				Str("action", string(action)).
				Int("failed", len(partial.FailedIDs)).
				Msg("partial status batch, failed ids returned to pending")
		default:
			var remaining []string
			for _, rest := range batches[i:] {
				remaining = append(remaining, rest...)
			}
			if resetErr := c.statuses.ResetSelected(ctx, remaining, g.key); resetErr != nil {
				c.log.Err(resetErr).Msg("resetting unsent statuses failed")
			}
			return fmt.Errorf("mark entries %s: %w", action, err)
		}
	}
	return nil
}

// MarkArticles writes the local status, enqueues it for the backend and
// opportunistically flushes the queue once it exceeds the configured
// threshold. A failed flush is not an error here: the statuses went
// back to pending and retry on the next cycle.
func (c *SyncCoordinator) MarkArticles(ctx context.Context, ids []string, key models.StatusKey, flag bool) error {
	if len(ids) == 0 {
		return nil
	}
	if err := c.local.MarkArticles(ctx, ids, key, flag); err != nil {
		return fmt.Errorf("mark articles locally: %w", err)
	}

	statuses := make([]models.SyncStatus, 0, len(ids))
	for _, id := range ids {
		statuses = append(statuses, models.SyncStatus{ArticleID: id, Key: key, Flag: flag})
	}
	if err := c.statuses.InsertStatuses(ctx, statuses); err != nil {
		return fmt.Errorf("enqueue statuses: %w", err)
	}

	count, err := c.statuses.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("count pending statuses: %w", err)
	}
	if count > c.opts.FlushThreshold && !c.netSuspended.Load() {
		if err = c.sendPendingStatuses(ctx); err != nil {
			c.log.Err(err).Int("pending", count).Msg("opportunistic status flush failed")
		}
	}
	return nil
}

// CreateFeed subscribes to url and places the feed in the named folder
// ("" = account root). With validate set, the backend's feed discovery
// runs first and the best candidate's URL is used; no candidate means
// ErrFeedNotFound. Subscribing to an existing subscription surfaces
// adapter.ErrAlreadySubscribed.
func (c *SyncCoordinator) CreateFeed(ctx context.Context, url, name, folderName string, validate bool) (models.Feed, error) {
	if c.netSuspended.Load() {
		return models.Feed{}, ErrNetworkSuspended
	}

	feedURL := url
	discoveredName := ""
	if validate {
		var candidates []models.FeedCandidate
		err := c.withSessionRetry(ctx, func(ctx context.Context) error {
			var err error
			candidates, err = c.backend.SearchFeed(ctx, url)
			return err
		})
		if err != nil {
			return models.Feed{}, fmt.Errorf("search feed: %w", err)
		}
		if len(candidates) == 0 {
			return models.Feed{}, fmt.Errorf("%w: %s", ErrFeedNotFound, url)
		}
		feedURL = candidates[0].URL
		discoveredName = candidates[0].Title
	}

	collectionID := ""
	if folderName != "" {
		var err error
		if collectionID, err = c.ensureRemoteCollection(ctx, folderName); err != nil {
			return models.Feed{}, err
		}
	}

	var collectionFeeds []models.CollectionFeed
	err := c.withSessionRetry(ctx, func(ctx context.Context) error {
		var err error
		collectionFeeds, err = c.backend.AddFeedToCollection(ctx, feedURL, "", collectionID)
		return err
	})
	if err != nil {
		return models.Feed{}, fmt.Errorf("subscribe %s: %w", feedURL, err)
	}

	feed := models.Feed{
		FeedID:     feedIDFor(feedURL, ""),
		URL:        feedURL,
		Name:       discoveredName,
		EditedName: name,
	}
	for _, cf := range collectionFeeds {
		if feedIDFor(cf.URL, cf.ID) == feed.FeedID || cf.URL == feedURL {
			feed.ExternalID = cf.ID
			feed.HomePageURL = cf.Website
			if cf.Title != "" {
				feed.Name = cf.Title
			}
			break
		}
	}

	if err = c.local.UpsertFeed(ctx, feed); err != nil {
		return models.Feed{}, fmt.Errorf("store new feed: %w", err)
	}
	if err = c.local.AddFeedToFolder(ctx, feed.FeedID, folderName); err != nil {
		return models.Feed{}, fmt.Errorf("attach new feed: %w", err)
	}
	return feed, nil
}

// RenameFeed records the user's name override. The override is a local
// concern: remote titles keep arriving in Name, the edited name wins in
// presentation.
func (c *SyncCoordinator) RenameFeed(ctx context.Context, feedID, newName string) error {
	feed, err := c.local.FeedByID(ctx, feedID)
	if err != nil {
		return fmt.Errorf("rename feed: %w", err)
	}
	feed.EditedName = newName
	if err = c.local.UpsertFeed(ctx, feed); err != nil {
		return fmt.Errorf("rename feed: %w", err)
	}
	return nil
}

// RemoveFeed detaches the feed from the named folder, remote first.
// When the feed leaves its last folder it is unsubscribed locally too.
func (c *SyncCoordinator) RemoveFeed(ctx context.Context, feedID, folderName string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	feed, err := c.local.FeedByID(ctx, feedID)
	if err != nil {
		return fmt.Errorf("remove feed: %w", err)
	}

	collectionID, err := c.collectionIDForFolder(ctx, folderName)
	if err != nil {
		return err
	}
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		return c.backend.RemoveFeedFromCollection(ctx, feed.ExternalID, collectionID)
	})
	if err != nil {
		return fmt.Errorf("remove feed remotely: %w", err)
	}

	if err = c.local.RemoveFeedFromFolder(ctx, feedID, folderName); err != nil {
		return fmt.Errorf("detach feed locally: %w", err)
	}
	folders, err := c.local.FolderNamesForFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("list feed folders: %w", err)
	}
	if len(folders) == 0 {
		if err = c.local.DeleteFeed(ctx, feedID); err != nil {
			return fmt.Errorf("delete unsubscribed feed: %w", err)
		}
	}
	return nil
}

// MoveFeed reattaches the feed from one folder to another, adding the
// new membership remotely before removing the old one so the feed is
// never subscription-less in between.
func (c *SyncCoordinator) MoveFeed(ctx context.Context, feedID, fromFolder, toFolder string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	feed, err := c.local.FeedByID(ctx, feedID)
	if err != nil {
		return fmt.Errorf("move feed: %w", err)
	}

	toCollection := ""
	if toFolder != "" {
		if toCollection, err = c.ensureRemoteCollection(ctx, toFolder); err != nil {
			return err
		}
	}
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		_, err := c.backend.AddFeedToCollection(ctx, feed.URL, feed.ExternalID, toCollection)
		return err
	})
	if err != nil && !errors.Is(err, adapter.ErrAlreadySubscribed) {
		return fmt.Errorf("attach feed remotely: %w", err)
	}

	fromCollection, err := c.collectionIDForFolder(ctx, fromFolder)
	if err != nil {
		return err
	}
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		return c.backend.RemoveFeedFromCollection(ctx, feed.ExternalID, fromCollection)
	})
	if err != nil {
		return fmt.Errorf("detach feed remotely: %w", err)
	}

	if err = c.local.AddFeedToFolder(ctx, feedID, toFolder); err != nil {
		return fmt.Errorf("attach feed locally: %w", err)
	}
	if err = c.local.RemoveFeedFromFolder(ctx, feedID, fromFolder); err != nil {
		return fmt.Errorf("detach feed locally: %w", err)
	}
	return nil
}

// AddFeed places an already-subscribed feed in one more folder, for
// backends that allow multiple memberships.
func (c *SyncCoordinator) AddFeed(ctx context.Context, feedID, folderName string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	feed, err := c.local.FeedByID(ctx, feedID)
	if err != nil {
		return fmt.Errorf("add feed: %w", err)
	}

	collectionID := ""
	if folderName != "" {
		if collectionID, err = c.ensureRemoteCollection(ctx, folderName); err != nil {
			return err
		}
	}
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		_, err := c.backend.AddFeedToCollection(ctx, feed.URL, feed.ExternalID, collectionID)
		return err
	})
	if err != nil && !errors.Is(err, adapter.ErrAlreadySubscribed) {
		return fmt.Errorf("attach feed remotely: %w", err)
	}
	if err = c.local.AddFeedToFolder(ctx, feedID, folderName); err != nil {
		return fmt.Errorf("attach feed locally: %w", err)
	}
	return nil
}

// RestoreFeed re-subscribes a previously removed feed (undo), keeping
// the user's edited name.
func (c *SyncCoordinator) RestoreFeed(ctx context.Context, feed models.Feed, folderName string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}

	collectionID := ""
	if folderName != "" {
		var err error
		if collectionID, err = c.ensureRemoteCollection(ctx, folderName); err != nil {
			return err
		}
	}
	err := c.withSessionRetry(ctx, func(ctx context.Context) error {
		_, err := c.backend.AddFeedToCollection(ctx, feed.URL, feed.ExternalID, collectionID)
		return err
	})
	if err != nil && !errors.Is(err, adapter.ErrAlreadySubscribed) {
		return fmt.Errorf("restore feed remotely: %w", err)
	}

	if err = c.local.UpsertFeed(ctx, feed); err != nil {
		return fmt.Errorf("restore feed locally: %w", err)
	}
	if err = c.local.AddFeedToFolder(ctx, feed.FeedID, folderName); err != nil {
		return fmt.Errorf("attach restored feed: %w", err)
	}
	return nil
}

// CreateFolder makes the remote collection first, then mirrors it
// locally with the assigned external ID.
func (c *SyncCoordinator) CreateFolder(ctx context.Context, name string) (models.Folder, error) {
	if c.netSuspended.Load() {
		return models.Folder{}, ErrNetworkSuspended
	}

	var collection models.Collection
	err := c.withSessionRetry(ctx, func(ctx context.Context) error {
		var err error
		collection, err = c.backend.CreateCollection(ctx, name)
		return err
	})
	if err != nil {
		return models.Folder{}, fmt.Errorf("create collection: %w", err)
	}

	if _, err = c.local.EnsureFolder(ctx, name); err != nil {
		return models.Folder{}, fmt.Errorf("create folder locally: %w", err)
	}
	if err = c.local.SetFolderExternalID(ctx, name, collection.ID); err != nil {
		return models.Folder{}, fmt.Errorf("assign folder external id: %w", err)
	}
	return models.Folder{Name: name, ExternalID: collection.ID}, nil
}

// RenameFolder renames the remote collection first, then the local
// folder, memberships included.
func (c *SyncCoordinator) RenameFolder(ctx context.Context, oldName, newName string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	folder, err := c.local.EnsureFolder(ctx, oldName)
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}

	if folder.ExternalID != "" {
		err = c.withSessionRetry(ctx, func(ctx context.Context) error {
			_, err := c.backend.RenameCollection(ctx, folder.ExternalID, newName)
			return err
		})
		if err != nil {
			return fmt.Errorf("rename collection: %w", err)
		}
	}
	if err = c.local.RenameFolder(ctx, oldName, newName); err != nil {
		return fmt.Errorf("rename folder locally: %w", err)
	}
	return nil
}

// RemoveFolder detaches every feed of the folder (remote and local,
// orphaning them to the account root) before the folder itself is
// removed. No feed is ever deleted as a side effect of folder deletion.
func (c *SyncCoordinator) RemoveFolder(ctx context.Context, name string) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	folder, err := c.local.EnsureFolder(ctx, name)
	if err != nil {
		return fmt.Errorf("remove folder: %w", err)
	}

	feedIDs, err := c.local.FeedIDsInFolder(ctx, name)
	if err != nil {
		return fmt.Errorf("list folder feeds: %w", err)
	}
	for _, feedID := range feedIDs {
		feed, err := c.local.FeedByID(ctx, feedID)
		if err != nil {
			return fmt.Errorf("load folder feed %s: %w", feedID, err)
		}
		if folder.ExternalID != "" {
			err = c.withSessionRetry(ctx, func(ctx context.Context) error {
				return c.backend.RemoveFeedFromCollection(ctx, feed.ExternalID, folder.ExternalID)
			})
			if err != nil {
				return fmt.Errorf("detach feed %s remotely: %w", feedID, err)
			}
		}
		if err = c.local.AddFeedToFolder(ctx, feedID, ""); err != nil {
			return fmt.Errorf("orphan feed %s to root: %w", feedID, err)
		}
		if err = c.local.RemoveFeedFromFolder(ctx, feedID, name); err != nil {
			return fmt.Errorf("detach feed %s locally: %w", feedID, err)
		}
	}

	if folder.ExternalID != "" {
		err = c.withSessionRetry(ctx, func(ctx context.Context) error {
			return c.backend.DeleteCollection(ctx, folder.ExternalID)
		})
		if err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
	}
	if err = c.local.DeleteFolder(ctx, name); err != nil {
		return fmt.Errorf("delete folder locally: %w", err)
	}
	return nil
}

// RestoreFolder recreates a previously removed folder (undo). Feeds are
// restored separately via RestoreFeed.
func (c *SyncCoordinator) RestoreFolder(ctx context.Context, folder models.Folder) error {
	_, err := c.CreateFolder(ctx, folder.Name)
	return err
}

// ImportOPML subscribes to every feed of the document. Top-level
// container outlines become folders; feeds already subscribed are
// skipped, they do not fail the import.
func (c *SyncCoordinator) ImportOPML(ctx context.Context, document []byte) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	doc, err := opml.NewOPML(document)
	if err != nil {
		return fmt.Errorf("parse opml: %w", err)
	}
	for _, outline := range doc.Body.Outlines {
		if err = c.importOutline(ctx, outline, ""); err != nil {
			return err
		}
	}
	return nil
}

func (c *SyncCoordinator) importOutline(ctx context.Context, outline opml.Outline, folderName string) error {
	if outline.XMLURL != "" {
		name := coalesce(outline.Title, outline.Text)
		_, err := c.CreateFeed(ctx, outline.XMLURL, name, folderName, false)
		if err != nil && !errors.Is(err, adapter.ErrAlreadySubscribed) {
			return fmt.Errorf("import feed %s: %w", outline.XMLURL, err)
		}
		return nil
	}

	// Container outline: its children land in a folder named after it.
	// Nested containers are flattened into the nearest ancestor, the
	// local hierarchy is one level deep.
	name := coalesce(outline.Title, outline.Text)
	if name == "" {
		name = folderName
	}
	for _, child := range outline.Outlines {
		if err := c.importOutline(ctx, child, name); err != nil {
			return err
		}
	}
	return nil
}

// AccountDidInitialize is the host's post-construction hook.
func (c *SyncCoordinator) AccountDidInitialize(ctx context.Context) error {
	count, err := c.statuses.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("account init: %w", err)
	}
	c.log.Info().Int("pending_statuses", count).Msg("account initialized")
	return nil
}

// AccountWillBeDeleted revokes the remote session and clears every
// piece of local account state: the pending queue, the feed and folder
// mirror, and the persisted cursors.
func (c *SyncCoordinator) AccountWillBeDeleted(ctx context.Context) error {
	if err := c.backend.Logout(ctx); err != nil {
		// Deletion proceeds even when the remote session is already gone.
		c.log.Err(err).Msg("remote logout failed during account deletion")
	}
	if err := c.statuses.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear pending statuses: %w", err)
	}
	if err := c.teardownLocalMirror(ctx); err != nil {
		return err
	}
	c.log.Info().Msg("account state cleared")
	return nil
}

// SuspendNetwork cancels the in-flight refresh, if any, and blocks new
// remote-touching operations until Resume.
func (c *SyncCoordinator) SuspendNetwork() {
	c.netSuspended.Store(true)
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.log.Debug().Msg("network suspended")
}

// SuspendDatabase drains the local store's writer and blocks new writes
// until Resume.
func (c *SyncCoordinator) SuspendDatabase() {
	if c.db != nil {
		c.db.Suspend()
	}
}

// Resume lifts both the network and the database suspension.
func (c *SyncCoordinator) Resume() {
	c.netSuspended.Store(false)
	if c.db != nil {
		c.db.Resume()
	}
	c.log.Debug().Msg("coordinator resumed")
}

// ensureRemoteCollection returns the remote collection ID mirroring the
// named folder, creating the collection when the folder has no remote
// counterpart yet.
func (c *SyncCoordinator) ensureRemoteCollection(ctx context.Context, folderName string) (string, error) {
	folder, err := c.local.EnsureFolder(ctx, folderName)
	if err != nil {
		return "", fmt.Errorf("ensure folder %s: %w", folderName, err)
	}
	if folder.ExternalID != "" {
		return folder.ExternalID, nil
	}

	var collection models.Collection
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		var err error
		collection, err = c.backend.CreateCollection(ctx, folderName)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("create collection %s: %w", folderName, err)
	}
	if err = c.local.SetFolderExternalID(ctx, folderName, collection.ID); err != nil {
		return "", fmt.Errorf("assign folder external id: %w", err)
	}
	return collection.ID, nil
}

// collectionIDForFolder resolves an existing folder's remote ID. The
// account root has none.
func (c *SyncCoordinator) collectionIDForFolder(ctx context.Context, folderName string) (string, error) {
	if folderName == "" {
		return "", nil
	}
	folder, err := c.local.EnsureFolder(ctx, folderName)
	if err != nil {
		return "", fmt.Errorf("resolve folder %s: %w", folderName, err)
	}
	return folder.ExternalID, nil
}
