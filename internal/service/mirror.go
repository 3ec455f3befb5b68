// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

// syncStateKeyAccountContainer persists the external ID of the remote
// account-root container so incremental change batches from later passes
// can still resolve feed records that reference it.
const syncStateKeyAccountContainer = "account_container_id"

// folderMirror reconciles the remote collection/tag hierarchy against
// the local folder hierarchy. Mirror handles one full snapshot;
// ApplyChanges handles an incremental change batch that may deliver
// feed records before the container records they reference.
type folderMirror struct {
	local store.LocalRepository
	log   *logger.Logger
}

func newFolderMirror(local store.LocalRepository, log *logger.Logger) *folderMirror {
	return &folderMirror{local: local, log: log}
}

// Mirror aligns local folders and feeds with a full remote collection
// snapshot:
//
//  1. every remote collection gets a local folder with matching name and
//     external ID; local folders without a remote counterpart are
//     deleted, their feeds orphaned to the account root first;
//  2. stale feed memberships inside surviving folders are detached;
//  3. remote feeds are matched by stable feed ID against the store and
//     against a same-pass lookaside of feeds created moments ago, so one
//     feed listed in two collections is created once;
//  4. feeds that end the pass in no collection and were not deliberately
//     orphaned to the root are removed.
func (m *folderMirror) Mirror(ctx context.Context, collections []models.Collection) error {
	keep := make(map[string]struct{})

	remoteLabels := make(map[string]struct{}, len(collections))
	for _, c := range collections {
		remoteLabels[c.Label] = struct{}{}
		folder, err := m.local.EnsureFolder(ctx, c.Label)
		if err != nil {
			return fmt.Errorf("ensure folder %s: %w", c.Label, err)
		}
		if folder.ExternalID != c.ID {
			if err = m.local.SetFolderExternalID(ctx, c.Label, c.ID); err != nil {
				return fmt.Errorf("assign folder external id: %w", err)
			}
		}
	}

	folders, err := m.local.Folders(ctx)
	if err != nil {
		return fmt.Errorf("list local folders: %w", err)
	}
	for _, folder := range folders {
		if _, still := remoteLabels[folder.Name]; still {
			continue
		}
		orphaned, err := m.orphanAndDeleteFolder(ctx, folder.Name)
		if err != nil {
			return err
		}
		// Orphans moved to the root survive the cleanup in step 4.
		for _, feedID := range orphaned {
			keep[feedID] = struct{}{}
		}
	}

	created := make(map[string]struct{})
	for _, c := range collections {
		want := make(map[string]models.CollectionFeed, len(c.Feeds))
		for _, cf := range c.Feeds {
			want[feedIDFor(cf.URL, cf.ID)] = cf
		}

		current, err := m.local.FeedIDsInFolder(ctx, c.Label)
		if err != nil {
			return fmt.Errorf("list feeds in folder %s: %w", c.Label, err)
		}
		for _, feedID := range current {
			if _, wanted := want[feedID]; !wanted {
				if err = m.local.RemoveFeedFromFolder(ctx, feedID, c.Label); err != nil {
					return fmt.Errorf("detach stale feed: %w", err)
				}
			}
		}

		for feedID, cf := range want {
			keep[feedID] = struct{}{}
			if err = m.ensureCollectionFeed(ctx, feedID, cf, created); err != nil {
				return err
			}
			if err = m.local.AddFeedToFolder(ctx, feedID, c.Label); err != nil {
				return fmt.Errorf("attach feed %s to %s: %w", feedID, c.Label, err)
			}
		}
	}

	feeds, err := m.local.Feeds(ctx)
	if err != nil {
		return fmt.Errorf("list local feeds: %w", err)
	}
	for _, feed := range feeds {
		if _, keepIt := keep[feed.FeedID]; keepIt {
			continue
		}
		if err = m.local.DeleteFeed(ctx, feed.FeedID); err != nil {
			return fmt.Errorf("remove orphan feed %s: %w", feed.FeedID, err)
		}
		m.log.Debug().Str("feed", feed.FeedID).Msg("removed feed no longer present remotely")
	}
	return nil
}

// ensureCollectionFeed creates or updates the local feed backing one
// collection entry. created is the same-pass lookaside: a feed already
// made earlier in this pass is matched by ID and not created again.
func (m *folderMirror) ensureCollectionFeed(ctx context.Context, feedID string, cf models.CollectionFeed, created map[string]struct{}) error {
	if _, justMade := created[feedID]; justMade {
		return nil
	}

	existing, err := m.local.FeedByID(ctx, feedID)
	switch {
	case err == nil:
		updated := existing
		updated.Name = cf.Title
		updated.ExternalID = cf.ID
		if cf.Website != "" {
			updated.HomePageURL = cf.Website
		}
		if updated == existing {
			return nil
		}
		if err = m.local.UpsertFeed(ctx, updated); err != nil {
			return fmt.Errorf("update feed %s: %w", feedID, err)
		}
		return nil
	case errors.Is(err, store.ErrFeedNotFound):
		feed := models.Feed{
			FeedID:      feedID,
			URL:         coalesce(cf.URL, cf.ID),
			Name:        cf.Title,
			ExternalID:  cf.ID,
			HomePageURL: cf.Website,
		}
		if err = m.local.UpsertFeed(ctx, feed); err != nil {
			return fmt.Errorf("create feed %s: %w", feedID, err)
		}
		created[feedID] = struct{}{}
		return nil
	default:
		return fmt.Errorf("look up feed %s: %w", feedID, err)
	}
}

// ApplyChanges folds one incremental change batch into the local mirror.
//
// The batch may deliver a feed record before the container record it
// references. Such relationships are buffered in a pass-scoped
// unclaimed map keyed by the container's external ID and drained the
// moment the container record arrives. The buffer lives and dies inside
// this call; relationships whose container never shows up are dropped
// with a warning, never carried to the next pass.
func (m *folderMirror) ApplyChanges(ctx context.Context, changed, deleted []models.ChangeRecord) error {
	unclaimed := make(map[string][]models.UnclaimedFeed)

	rootIDs := make(map[string]struct{})
	if accountID, err := m.local.SyncState(ctx, syncStateKeyAccountContainer); err != nil {
		return fmt.Errorf("load account container id: %w", err)
	} else if accountID != "" {
		rootIDs[accountID] = struct{}{}
	}

	for _, rec := range changed {
		switch rec.Type {
		case models.ChangeRecordContainer:
			if err := m.applyContainerChange(ctx, rec, rootIDs, unclaimed); err != nil {
				return err
			}
		case models.ChangeRecordFeed:
			if err := m.applyFeedChange(ctx, rec, rootIDs, unclaimed); err != nil {
				return err
			}
		}
	}

	for _, rec := range deleted {
		switch rec.Type {
		case models.ChangeRecordContainer:
			// Buffered feeds aimed at a deleted container are dropped.
			delete(unclaimed, rec.ExternalID)
			if err := m.deleteContainerByExternalID(ctx, rec.ExternalID); err != nil {
				return err
			}
		case models.ChangeRecordFeed:
			if err := m.deleteFeedByExternalID(ctx, rec.ExternalID); err != nil {
				return err
			}
		}
	}

	// The next full snapshot restores any placement dropped here.
	for containerID, feeds := range unclaimed {
		m.log.Warn().
			Str("container", containerID).
			Int("feeds", len(feeds)).
			Msg("dropping unclaimed feeds: container never arrived in this batch")
	}
	return nil
}

func (m *folderMirror) applyContainerChange(ctx context.Context, rec models.ChangeRecord, rootIDs map[string]struct{}, unclaimed map[string][]models.UnclaimedFeed) error {
	if rec.IsAccount {
		rootIDs[rec.ExternalID] = struct{}{}
		if err := m.local.SetSyncState(ctx, syncStateKeyAccountContainer, rec.ExternalID); err != nil {
			return fmt.Errorf("persist account container id: %w", err)
		}
		return nil
	}

	folder, err := m.local.FolderByExternalID(ctx, rec.ExternalID)
	switch {
	case err == nil:
		if folder.Name != rec.Name {
			if err = m.local.RenameFolder(ctx, folder.Name, rec.Name); err != nil {
				return fmt.Errorf("rename folder %s: %w", folder.Name, err)
			}
		}
	case errors.Is(err, store.ErrFolderNotFound):
		if _, err = m.local.EnsureFolder(ctx, rec.Name); err != nil {
			return fmt.Errorf("create folder %s: %w", rec.Name, err)
		}
		if err = m.local.SetFolderExternalID(ctx, rec.Name, rec.ExternalID); err != nil {
			return fmt.Errorf("assign folder external id: %w", err)
		}
	default:
		return fmt.Errorf("look up folder %s: %w", rec.ExternalID, err)
	}

	// Second phase of the two-phase protocol: feeds that arrived ahead
	// of this container are materialized now, exactly once.
	for _, uf := range unclaimed[rec.ExternalID] {
		if err := m.materializeUnclaimed(ctx, uf, rec.Name); err != nil {
			return err
		}
	}
	delete(unclaimed, rec.ExternalID)
	return nil
}

func (m *folderMirror) applyFeedChange(ctx context.Context, rec models.ChangeRecord, rootIDs map[string]struct{}, unclaimed map[string][]models.UnclaimedFeed) error {
	containerIDs := rec.ContainerExternalIDs
	if len(containerIDs) == 0 {
		return m.attachFeedRecord(ctx, rec, "")
	}

	for _, containerID := range containerIDs {
		if _, isRoot := rootIDs[containerID]; isRoot {
			if err := m.attachFeedRecord(ctx, rec, ""); err != nil {
				return err
			}
			continue
		}

		folder, err := m.local.FolderByExternalID(ctx, containerID)
		switch {
		case err == nil:
			if err = m.attachFeedRecord(ctx, rec, folder.Name); err != nil {
				return err
			}
		case errors.Is(err, store.ErrFolderNotFound):
			// First phase: the container has not arrived yet. Buffer the
			// relationship instead of failing.
			unclaimed[containerID] = append(unclaimed[containerID], models.UnclaimedFeed{
				URL:            rec.URL,
				Name:           rec.Name,
				EditedName:     rec.EditedName,
				HomePageURL:    rec.HomePageURL,
				FeedExternalID: rec.ExternalID,
			})
		default:
			return fmt.Errorf("look up container %s: %w", containerID, err)
		}
	}
	return nil
}

// attachFeedRecord upserts the feed described by rec and places it in
// folderName ("" = account root).
func (m *folderMirror) attachFeedRecord(ctx context.Context, rec models.ChangeRecord, folderName string) error {
	feedID := feedIDFor(rec.URL, rec.ExternalID)
	feed := models.Feed{
		FeedID:      feedID,
		URL:         coalesce(rec.URL, rec.ExternalID),
		Name:        rec.Name,
		EditedName:  rec.EditedName,
		ExternalID:  rec.ExternalID,
		HomePageURL: rec.HomePageURL,
	}
	if err := m.local.UpsertFeed(ctx, feed); err != nil {
		return fmt.Errorf("upsert changed feed %s: %w", feedID, err)
	}
	if err := m.local.AddFeedToFolder(ctx, feedID, folderName); err != nil {
		return fmt.Errorf("attach changed feed %s: %w", feedID, err)
	}
	return nil
}

func (m *folderMirror) materializeUnclaimed(ctx context.Context, uf models.UnclaimedFeed, folderName string) error {
	feedID := feedIDFor(uf.URL, uf.FeedExternalID)
	feed := models.Feed{
		FeedID:      feedID,
		URL:         coalesce(uf.URL, uf.FeedExternalID),
		Name:        uf.Name,
		EditedName:  uf.EditedName,
		ExternalID:  uf.FeedExternalID,
		HomePageURL: uf.HomePageURL,
	}
	if err := m.local.UpsertFeed(ctx, feed); err != nil {
		return fmt.Errorf("materialize unclaimed feed %s: %w", feedID, err)
	}
	if err := m.local.AddFeedToFolder(ctx, feedID, folderName); err != nil {
		return fmt.Errorf("attach unclaimed feed %s: %w", feedID, err)
	}
	return nil
}

func (m *folderMirror) deleteContainerByExternalID(ctx context.Context, externalID string) error {
	folder, err := m.local.FolderByExternalID(ctx, externalID)
	if errors.Is(err, store.ErrFolderNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up deleted container %s: %w", externalID, err)
	}
	if _, err = m.orphanAndDeleteFolder(ctx, folder.Name); err != nil {
		return err
	}
	return nil
}

func (m *folderMirror) deleteFeedByExternalID(ctx context.Context, externalID string) error {
	feed, err := m.local.FeedByExternalID(ctx, externalID)
	if errors.Is(err, store.ErrFeedNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up deleted feed %s: %w", externalID, err)
	}
	if err = m.local.DeleteFeed(ctx, feed.FeedID); err != nil {
		return fmt.Errorf("delete feed %s: %w", feed.FeedID, err)
	}
	return nil
}

// orphanAndDeleteFolder reattaches every feed of the folder to the
// account root and only then deletes the folder, so no feed is ever
// deleted as a side effect of folder deletion. It returns the orphaned
// feed IDs.
func (m *folderMirror) orphanAndDeleteFolder(ctx context.Context, name string) ([]string, error) {
	feedIDs, err := m.local.FeedIDsInFolder(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list feeds of folder %s: %w", name, err)
	}
	for _, feedID := range feedIDs {
		if err = m.local.AddFeedToFolder(ctx, feedID, ""); err != nil {
			return nil, fmt.Errorf("orphan feed %s to root: %w", feedID, err)
		}
		if err = m.local.RemoveFeedFromFolder(ctx, feedID, name); err != nil {
			return nil, fmt.Errorf("detach feed %s from %s: %w", feedID, name, err)
		}
	}
	if err = m.local.DeleteFolder(ctx, name); err != nil {
		return nil, fmt.Errorf("delete folder %s: %w", name, err)
	}
	m.log.Debug().Str("folder", name).Int("orphaned", len(feedIDs)).Msg("deleted folder, feeds moved to root")
	return feedIDs, nil
}

// feedIDFor derives the stable local feed identifier: the subscription
// URL when known, the remote ID otherwise.
func feedIDFor(url, externalID string) string {
	if url != "" {
		return url
	}
	return externalID
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
