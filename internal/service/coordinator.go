// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the synchronization orchestration layer:
// the stream paginator, the status reconciler, the folder mirror and the
// sync coordinator that composes them into dependency-ordered task
// graphs against one backend adapter and one local store per account.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-feed-sync/internal/adapter"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/internal/pipeline"
	"github.com/MKhiriev/go-feed-sync/internal/store"
	"github.com/MKhiriev/go-feed-sync/models"
)

const (
	syncStateKeyLastFetchStart = "last_fetch_start"
	syncStateKeyLastFetchEnd   = "last_fetch_end"
	syncStateKeyChangeCursor   = "change_cursor"
)

// Options tunes per-account coordinator behavior.
type Options struct {
	// FlushThreshold is the pending-status queue size above which
	// MarkArticles opportunistically flushes the queue to the backend.
	FlushThreshold int

	// MaxStreamPages bounds one stream drain; see ErrTooManyPages.
	MaxStreamPages int
}

// DefaultOptions returns the coordinator defaults.
func DefaultOptions() Options {
	return Options{FlushThreshold: 100, MaxStreamPages: defaultMaxStreamPages}
}

// SyncCoordinator owns the synchronization of one configured account:
// one backend adapter, one pending-status queue and one local mirror.
// All public operations are safe for concurrent use; writers to the
// local store are serialized by the store itself.
type SyncCoordinator struct {
	backend  adapter.BackendAdapter
	statuses store.PendingStatusRepository
	local    store.LocalRepository
	db       *store.DB
	mirror   *folderMirror
	log      *logger.Logger
	opts     Options

	refreshing   atomic.Bool
	netSuspended atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSyncCoordinator wires a coordinator for one account. db may be nil
// when the caller manages database suspension itself.
func NewSyncCoordinator(backend adapter.BackendAdapter, statuses store.PendingStatusRepository, local store.LocalRepository, db *store.DB, log *logger.Logger, opts Options) *SyncCoordinator {
	if opts.FlushThreshold <= 0 {
		opts.FlushThreshold = DefaultOptions().FlushThreshold
	}
	if opts.MaxStreamPages <= 0 {
		opts.MaxStreamPages = DefaultOptions().MaxStreamPages
	}
	return &SyncCoordinator{
		backend:  backend,
		statuses: statuses,
		local:    local,
		db:       db,
		mirror:   newFolderMirror(local, log),
		log:      log,
		opts:     opts,
	}
}

// refreshPass carries the transient state of one full refresh between
// the tasks of its graph.
type refreshPass struct {
	collections []models.Collection
	unreadIDs   map[string]struct{}
	starredIDs  map[string]struct{}
	updatedIDs  map[string]struct{}
	downloadIDs []string
	failedStep  string
}

// RefreshAll runs the full refresh recipe: send pending statuses, fetch
// and mirror collections, drain the article-ID streams, reconcile read
// and starred status, then download missing or updated articles. The
// last-successful-fetch timestamps advance only when the checkpoint
// reports success, so a failed pass's window is re-covered next time.
//
// A concurrent call while a refresh is in flight is a no-op success:
// the running pass already covers the same outcome.
func (c *SyncCoordinator) RefreshAll(ctx context.Context) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}
	if !c.refreshing.CompareAndSwap(false, true) {
		c.log.Debug().Msg("refresh already in flight, skipping")
		return nil
	}
	defer c.refreshing.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.cancel = nil
		c.mu.Unlock()
	}()

	passID := uuid.NewString()
	log := c.log.GetChildLogger("pass", passID)
	log.Info().Msg("full refresh started")

	passStart := time.Now().UTC()
	lastStart, err := c.lastFetchStart(ctx)
	if err != nil {
		return err
	}

	pass := &refreshPass{}
	g := pipeline.NewGraph(log)
	step := func(name string, fn pipeline.RunFunc, deps ...*pipeline.Task) *pipeline.Task {
		return g.Add(name, func(ctx context.Context) error {
			if err := fn(ctx); err != nil {
				pass.failedStep = name
				return err
			}
			return nil
		}, deps...)
	}

	send := step("send pending statuses", c.sendPendingStatuses)
	coll := step("fetch collections", func(ctx context.Context) error {
		return c.withSessionRetry(ctx, func(ctx context.Context) error {
			var err error
			pass.collections, err = c.backend.GetCollections(ctx)
			return err
		})
	}, send)
	mirror := step("mirror folders", func(ctx context.Context) error {
		return c.mirror.Mirror(ctx, pass.collections)
	}, coll)
	all := step("fetch all article ids", func(ctx context.Context) error {
		ids, err := c.drain(ctx, models.StreamQuery{Resource: models.StreamAll})
		if err != nil {
			return err
		}
		return c.local.EnsureArticleStatuses(ctx, setToSlice(ids))
	}, mirror)
	unread := step("fetch unread ids", func(ctx context.Context) error {
		var err error
		pass.unreadIDs, err = c.drain(ctx, models.StreamQuery{Resource: models.StreamUnread, UnreadOnly: true})
		return err
	}, all)
	readRec := step("reconcile read status", func(ctx context.Context) error {
		return c.reconcileKey(ctx, models.StatusKeyRead, pass.unreadIDs, false)
	}, unread)
	updated := step("fetch updated since last pass", func(ctx context.Context) error {
		if lastStart == nil {
			pass.updatedIDs = map[string]struct{}{}
			return nil
		}
		var err error
		pass.updatedIDs, err = c.drain(ctx, models.StreamQuery{Resource: models.StreamAll, NewerThan: lastStart})
		return err
	}, readRec)
	starred := step("fetch starred ids", func(ctx context.Context) error {
		var err error
		pass.starredIDs, err = c.drain(ctx, models.StreamQuery{Resource: models.StreamStarred})
		return err
	}, updated)
	starRec := step("reconcile starred status", func(ctx context.Context) error {
		return c.reconcileKey(ctx, models.StatusKeyStarred, pass.starredIDs, true)
	}, starred)
	missing := step("collect missing article ids", func(ctx context.Context) error {
		ids, err := c.local.MissingArticleIDs(ctx)
		if err != nil {
			return fmt.Errorf("missing article ids: %w", err)
		}
		want := make(map[string]struct{}, len(ids)+len(pass.updatedIDs))
		for _, id := range ids {
			want[id] = struct{}{}
		}
		for id := range pass.updatedIDs {
			want[id] = struct{}{}
		}
		pass.downloadIDs = setToSlice(want)
		return nil
	}, starRec)
	step("download articles", func(ctx context.Context) error {
		return c.downloadArticles(ctx, pass.downloadIDs)
	}, missing)
	g.AddCheckpoint("checkpoint", func(ctx context.Context, err error) {
		if err != nil {
			return
		}
		if stateErr := c.local.SetSyncState(ctx, syncStateKeyLastFetchStart, passStart.Format(time.RFC3339)); stateErr != nil {
			log.Err(stateErr).Msg("persisting last fetch start failed")
			return
		}
		if stateErr := c.local.SetSyncState(ctx, syncStateKeyLastFetchEnd, time.Now().UTC().Format(time.RFC3339)); stateErr != nil {
			log.Err(stateErr).Msg("persisting last fetch end failed")
		}
	})

	if err = g.Run(ctx); err != nil {
		if errors.Is(err, adapter.ErrCorruptRemoteState) {
			if downErr := c.teardownLocalMirror(ctx); downErr != nil {
				log.Err(downErr).Msg("local teardown after corrupt remote state failed")
			}
		}
		log.Err(err).Str("step", pass.failedStep).Msg("full refresh failed")
		return &RefreshError{Step: pass.failedStep, Err: err}
	}

	log.Info().Msg("full refresh finished")
	return nil
}

// RefreshChanges applies the backend's incremental change feed when the
// backend provides one; for all other backends it is a no-op success.
// The continuation cursor is persisted only after the batch applied
// cleanly.
func (c *SyncCoordinator) RefreshChanges(ctx context.Context) error {
	provider, ok := c.backend.(adapter.ChangeFeedProvider)
	if !ok {
		return nil
	}
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}

	cursor, err := c.local.SyncState(ctx, syncStateKeyChangeCursor)
	if err != nil {
		return fmt.Errorf("load change cursor: %w", err)
	}

	var changed, deleted []models.ChangeRecord
	var next string
	err = c.withSessionRetry(ctx, func(ctx context.Context) error {
		changed, deleted, next, err = provider.GetChanges(ctx, cursor)
		return err
	})
	if err != nil {
		if errors.Is(err, adapter.ErrCorruptRemoteState) {
			if downErr := c.teardownLocalMirror(ctx); downErr != nil {
				c.log.Err(downErr).Msg("local teardown after corrupt remote state failed")
			}
		}
		return fmt.Errorf("get changes: %w", err)
	}

	if err = c.mirror.ApplyChanges(ctx, changed, deleted); err != nil {
		return fmt.Errorf("apply changes: %w", err)
	}
	if err = c.local.SetSyncState(ctx, syncStateKeyChangeCursor, next); err != nil {
		return fmt.Errorf("persist change cursor: %w", err)
	}
	return nil
}

// RefreshArticleStatus pulls the remote unread and starred snapshots and
// reconciles both statuses. No folder mirroring, no article download.
func (c *SyncCoordinator) RefreshArticleStatus(ctx context.Context) error {
	if c.netSuspended.Load() {
		return ErrNetworkSuspended
	}

	unread, err := c.drain(ctx, models.StreamQuery{Resource: models.StreamUnread, UnreadOnly: true})
	if err != nil {
		return err
	}
	if err = c.reconcileKey(ctx, models.StatusKeyRead, unread, false); err != nil {
		return err
	}

	starred, err := c.drain(ctx, models.StreamQuery{Resource: models.StreamStarred})
	if err != nil {
		return err
	}
	return c.reconcileKey(ctx, models.StatusKeyStarred, starred, true)
}

// drain pages through one stream with the session-retry policy.
func (c *SyncCoordinator) drain(ctx context.Context, q models.StreamQuery) (map[string]struct{}, error) {
	var ids map[string]struct{}
	err := c.withSessionRetry(ctx, func(ctx context.Context) error {
		var err error
		ids, err = drainStreamIDs(ctx, c.backend, q, c.opts.MaxStreamPages)
		return err
	})
	return ids, err
}

// reconcileKey aligns one boolean status with the remote snapshot.
// remote is the set of articles the backend reports with the status
// equal to setFlag; for read status the snapshot is the unread set, so
// setFlag is false.
func (c *SyncCoordinator) reconcileKey(ctx context.Context, key models.StatusKey, remote map[string]struct{}, setFlag bool) error {
	local, err := c.local.ArticleIDsWithStatus(ctx, key, setFlag)
	if err != nil {
		return fmt.Errorf("local %s snapshot: %w", key, err)
	}
	pending, err := c.statuses.PendingArticleIDs(ctx, key)
	if err != nil {
		return fmt.Errorf("pending %s ids: %w", key, err)
	}

	toSet, toUnset := reconcileStatus(remote, local, pending)
	if err = c.local.MarkArticles(ctx, toSet, key, setFlag); err != nil {
		return fmt.Errorf("apply %s set: %w", key, err)
	}
	if err = c.local.MarkArticles(ctx, toUnset, key, !setFlag); err != nil {
		return fmt.Errorf("apply %s unset: %w", key, err)
	}
	c.log.Debug().
		Str("key", string(key)).
		Int("set", len(toSet)).
		Int("unset", len(toUnset)).
		Msg("status reconciled")
	return nil
}

// downloadArticles fetches full payloads for ids in backend-sized
// batches and writes them to the local store. Entries the backend could
// not parse are dropped from the batch, never reported as errors.
func (c *SyncCoordinator) downloadArticles(ctx context.Context, ids []string) error {
	for _, batch := range chunkStrings(ids, c.backend.EntryBatchLimit()) {
		var entries []models.Entry
		err := c.withSessionRetry(ctx, func(ctx context.Context) error {
			var err error
			entries, err = c.backend.GetEntries(ctx, batch)
			return err
		})
		if err != nil {
			return fmt.Errorf("download articles: %w", err)
		}
		if err = c.local.UpsertArticles(ctx, c.articlesFromEntries(ctx, entries)); err != nil {
			return fmt.Errorf("store downloaded articles: %w", err)
		}
	}
	return nil
}

// articlesFromEntries converts remote entries to local articles. Entries
// without an ID are dropped; a feed the local mirror does not know yet
// keeps its remote feed ID so the article is not lost.
func (c *SyncCoordinator) articlesFromEntries(ctx context.Context, entries []models.Entry) []models.Article {
	articles := make([]models.Article, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" {
			c.log.Debug().Msg("dropping entry without id")
			continue
		}
		feedID := entry.FeedExternalID
		if feed, err := c.local.FeedByExternalID(ctx, entry.FeedExternalID); err == nil {
			feedID = feed.FeedID
		}
		articles = append(articles, models.Article{
			ArticleID:   entry.ID,
			FeedID:      feedID,
			Title:       entry.Title,
			Author:      entry.Author,
			ContentHTML: entry.ContentHTML,
			ExternalURL: entry.ExternalURL,
			Published:   entry.Published,
		})
	}
	return articles
}

// withSessionRetry runs fn and, on an authentication failure, refreshes
// the backend session and retries exactly once.
func (c *SyncCoordinator) withSessionRetry(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}
	if refreshErr := c.backend.RefreshSession(ctx); refreshErr != nil {
		return fmt.Errorf("refresh session: %w", refreshErr)
	}
	return fn(ctx)
}

// lastFetchStart loads the persisted start timestamp of the last
// successful refresh, nil when no pass has succeeded yet.
func (c *SyncCoordinator) lastFetchStart(ctx context.Context) (*time.Time, error) {
	raw, err := c.local.SyncState(ctx, syncStateKeyLastFetchStart)
	if err != nil {
		return nil, fmt.Errorf("load last fetch start: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("parse last fetch start %q: %w", raw, err)
	}
	return &t, nil
}

// teardownLocalMirror reacts to a corrupt remote state: the local feed
// and folder mirror is removed and the cursors are reset, forcing a
// clean re-sync on the next pass. Pending statuses are kept; they are
// retried, never silently dropped.
func (c *SyncCoordinator) teardownLocalMirror(ctx context.Context) error {
	if err := c.local.DeleteAllFeedsAndFolders(ctx); err != nil {
		return fmt.Errorf("teardown feeds and folders: %w", err)
	}
	for _, key := range []string{syncStateKeyLastFetchStart, syncStateKeyLastFetchEnd, syncStateKeyChangeCursor, syncStateKeyAccountContainer} {
		if err := c.local.SetSyncState(ctx, key, ""); err != nil {
			return fmt.Errorf("reset sync state %s: %w", key, err)
		}
	}
	c.log.Warn().Msg("local mirror torn down after corrupt remote state")
	return nil
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func chunkStrings(ids []string, size int) [][]string {
	if size <= 0 {
		size = len(ids)
	}
	var chunks [][]string
	for len(ids) > 0 {
		n := size
		if n > len(ids) {
			n = len(ids)
		}
		chunks = append(chunks, ids[:n])
		ids = ids[n:]
	}
	return chunks
}
