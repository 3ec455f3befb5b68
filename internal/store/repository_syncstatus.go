// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// syncStatusRepository is the sqlite-backed implementation of
// [PendingStatusRepository]. All writes pass through the DB's suspend
// gate so the host can drain the disk writer before backgrounding.
type syncStatusRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncStatusRepository constructs a [PendingStatusRepository] backed
// by the provided database connection and logger.
func NewSyncStatusRepository(db *DB, log *logger.Logger) PendingStatusRepository {
	return &syncStatusRepository{DB: db, logger: log}
}

func (r *syncStatusRepository) InsertStatuses(ctx context.Context, statuses []models.SyncStatus) error {
	if len(statuses) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	builder := sq.Insert("sync_statuses").Columns("article_id", "status_key", "flag", "selected")
	for _, status := range statuses {
		builder = builder.Values(status.ArticleID, status.Key, status.Flag, false)
	}
	query, args, err := builder.
		Suffix("ON CONFLICT (article_id, status_key) DO UPDATE SET flag = excluded.flag, selected = 0").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insert statuses: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert statuses: %w", err)
	}
	return nil
}

func (r *syncStatusRepository) SelectForProcessing(ctx context.Context) ([]models.SyncStatus, error) {
	release, err := r.beginWrite()
	if err != nil {
		return nil, err
	}
	defer release()

	// Selecting and marking happen in one statement: a row inserted while
	// a batch is in flight keeps selected = 0 and is claimed next time.
	rows, err := r.QueryContext(ctx, claimPendingStatuses)
	if err != nil {
		return nil, fmt.Errorf("claim pending statuses: %w", err)
	}
	defer rows.Close()

	var statuses []models.SyncStatus
	for rows.Next() {
		var status models.SyncStatus
		if err = rows.Scan(&status.ArticleID, &status.Key, &status.Flag); err != nil {
			return nil, fmt.Errorf("scan pending status: %w", err)
		}
		statuses = append(statuses, status)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending statuses: %w", err)
	}
	return statuses, nil
}

func (r *syncStatusRepository) PendingCount(ctx context.Context) (int, error) {
	var count int
	if err := r.QueryRowContext(ctx, countStatuses).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending statuses: %w", err)
	}
	return count, nil
}

func (r *syncStatusRepository) PendingArticleIDs(ctx context.Context, key models.StatusKey) (map[string]struct{}, error) {
	rows, err := r.QueryContext(ctx, selectStatusIDsByKey, key)
	if err != nil {
		return nil, fmt.Errorf("select pending article ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan pending article id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending article ids: %w", err)
	}
	return ids, nil
}

func (r *syncStatusRepository) DeleteSelected(ctx context.Context, ids []string, key models.StatusKey) error {
	if len(ids) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	query, args, err := sq.Delete("sync_statuses").
		Where(sq.Eq{"article_id": ids, "status_key": key}).
		Where("selected = 1").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: delete selected statuses: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete selected statuses: %w", err)
	}
	return nil
}

func (r *syncStatusRepository) ResetSelected(ctx context.Context, ids []string, key models.StatusKey) error {
	if len(ids) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	query, args, err := sq.Update("sync_statuses").
		Set("selected", false).
		Where(sq.Eq{"article_id": ids, "status_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: reset selected statuses: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset selected statuses: %w", err)
	}
	return nil
}

func (r *syncStatusRepository) DeleteAll(ctx context.Context) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	if _, err = r.ExecContext(ctx, deleteAllStatuses); err != nil {
		return fmt.Errorf("delete all statuses: %w", err)
	}
	return nil
}
