// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

// localRepository is the sqlite-backed implementation of
// [LocalRepository]: the account's local mirror of folders, feeds,
// articles and article statuses.
type localRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRepository constructs a [LocalRepository] backed by the
// provided database connection and logger.
func NewLocalRepository(db *DB, log *logger.Logger) LocalRepository {
	return &localRepository{DB: db, logger: log}
}

// ── Folders ─────────────────────────────────────────────────────────────────

func (r *localRepository) Folders(ctx context.Context) ([]models.Folder, error) {
	rows, err := r.QueryContext(ctx, selectFolders)
	if err != nil {
		return nil, fmt.Errorf("select folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err = rows.Scan(&folder.Name, &folder.ExternalID); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

func (r *localRepository) EnsureFolder(ctx context.Context, name string) (models.Folder, error) {
	var folder models.Folder
	err := r.QueryRowContext(ctx, selectFolderByName, name).Scan(&folder.Name, &folder.ExternalID)
	if err == nil {
		return folder, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, fmt.Errorf("select folder %s: %w", name, err)
	}

	release, err := r.beginWrite()
	if err != nil {
		return models.Folder{}, err
	}
	defer release()

	if _, err = r.ExecContext(ctx, insertFolder, name); err != nil {
		return models.Folder{}, fmt.Errorf("insert folder %s: %w", name, err)
	}
	return models.Folder{Name: name}, nil
}

func (r *localRepository) SetFolderExternalID(ctx context.Context, name, externalID string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	result, err := r.ExecContext(ctx, updateFolderExternalID, externalID, name)
	if err != nil {
		return fmt.Errorf("set folder external id: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("set folder external id %s: %w", name, ErrFolderNotFound)
	}
	return nil
}

func (r *localRepository) FolderByExternalID(ctx context.Context, externalID string) (models.Folder, error) {
	var folder models.Folder
	err := r.QueryRowContext(ctx, selectFolderByExternalID, externalID).Scan(&folder.Name, &folder.ExternalID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		return models.Folder{}, fmt.Errorf("select folder by external id: %w", err)
	}
	return folder, nil
}

func (r *localRepository) RenameFolder(ctx context.Context, oldName, newName string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	result, err := r.ExecContext(ctx, renameFolderQuery, newName, oldName)
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return fmt.Errorf("rename folder %s: %w", oldName, ErrFolderNotFound)
	}
	if _, err = r.ExecContext(ctx, renameFolderMemberships, newName, oldName); err != nil {
		return fmt.Errorf("rename folder memberships: %w", err)
	}
	return nil
}

func (r *localRepository) DeleteFolder(ctx context.Context, name string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	// Membership rows go first; feed records themselves are never
	// deleted here.
	if _, err = r.ExecContext(ctx, deleteFolderMemberships, name); err != nil {
		return fmt.Errorf("delete folder memberships: %w", err)
	}
	if _, err = r.ExecContext(ctx, deleteFolderQuery, name); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

// ── Feeds ───────────────────────────────────────────────────────────────────

func (r *localRepository) Feeds(ctx context.Context) ([]models.Feed, error) {
	rows, err := r.QueryContext(ctx, selectFeeds)
	if err != nil {
		return nil, fmt.Errorf("select feeds: %w", err)
	}
	defer rows.Close()

	var feeds []models.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}
	return feeds, nil
}

func (r *localRepository) FeedByID(ctx context.Context, feedID string) (models.Feed, error) {
	return r.feedByQuery(ctx, selectFeedByID, feedID)
}

func (r *localRepository) FeedByExternalID(ctx context.Context, externalID string) (models.Feed, error) {
	return r.feedByQuery(ctx, selectFeedByExternalID, externalID)
}

func (r *localRepository) feedByQuery(ctx context.Context, query, arg string) (models.Feed, error) {
	var feed models.Feed
	err := r.QueryRowContext(ctx, query, arg).Scan(
		&feed.FeedID, &feed.URL, &feed.Name, &feed.EditedName, &feed.ExternalID, &feed.HomePageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Feed{}, ErrFeedNotFound
	}
	if err != nil {
		return models.Feed{}, fmt.Errorf("select feed: %w", err)
	}
	return feed, nil
}

func (r *localRepository) UpsertFeed(ctx context.Context, feed models.Feed) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	_, err = r.ExecContext(ctx, upsertFeedQuery,
		feed.FeedID, feed.URL, feed.Name, feed.EditedName, feed.ExternalID, feed.HomePageURL)
	if err != nil {
		return fmt.Errorf("upsert feed %s: %w", feed.FeedID, err)
	}
	return nil
}

func (r *localRepository) DeleteFeed(ctx context.Context, feedID string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	if _, err = r.ExecContext(ctx, deleteFeedMemberships, feedID); err != nil {
		return fmt.Errorf("delete feed memberships: %w", err)
	}
	if _, err = r.ExecContext(ctx, deleteFeedArticles, feedID); err != nil {
		return fmt.Errorf("delete feed articles: %w", err)
	}
	if _, err = r.ExecContext(ctx, deleteFeedQuery, feedID); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}

// ── Memberships ─────────────────────────────────────────────────────────────

func (r *localRepository) AddFeedToFolder(ctx context.Context, feedID, folderName string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	if _, err = r.ExecContext(ctx, insertFeedMembership, feedID, folderName); err != nil {
		return fmt.Errorf("add feed to folder: %w", err)
	}
	return nil
}

func (r *localRepository) RemoveFeedFromFolder(ctx context.Context, feedID, folderName string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	if _, err = r.ExecContext(ctx, deleteFeedMembership, feedID, folderName); err != nil {
		return fmt.Errorf("remove feed from folder: %w", err)
	}
	return nil
}

func (r *localRepository) FeedIDsInFolder(ctx context.Context, folderName string) ([]string, error) {
	return r.selectStrings(ctx, selectFeedIDsInFolder, folderName)
}

func (r *localRepository) FolderNamesForFeed(ctx context.Context, feedID string) ([]string, error) {
	return r.selectStrings(ctx, selectFolderNamesForFeed, feedID)
}

func (r *localRepository) DeleteAllFeedsAndFolders(ctx context.Context) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	for _, query := range []string{deleteAllMemberships, deleteAllFeeds, deleteAllFolders} {
		if _, err = r.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("teardown feeds and folders: %w", err)
		}
	}
	return nil
}

// ── Article statuses and content ────────────────────────────────────────────

func (r *localRepository) ArticleIDsWithStatus(ctx context.Context, key models.StatusKey, flag bool) (map[string]struct{}, error) {
	rows, err := r.QueryContext(ctx, selectArticleIDsWithStatus, key, flag)
	if err != nil {
		return nil, fmt.Errorf("select article ids with status: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan article id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article ids: %w", err)
	}
	return ids, nil
}

func (r *localRepository) EnsureArticleStatuses(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	builder := sq.Insert("article_statuses").Columns("article_id", "status_key", "flag")
	for _, id := range ids {
		builder = builder.Values(id, models.StatusKeyRead, false)
	}
	query, args, err := builder.
		Suffix("ON CONFLICT (article_id, status_key) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ensure article statuses: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure article statuses: %w", err)
	}
	return nil
}

func (r *localRepository) MarkArticles(ctx context.Context, ids []string, key models.StatusKey, flag bool) error {
	if len(ids) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	builder := sq.Insert("article_statuses").Columns("article_id", "status_key", "flag")
	for _, id := range ids {
		builder = builder.Values(id, key, flag)
	}
	query, args, err := builder.
		Suffix("ON CONFLICT (article_id, status_key) DO UPDATE SET flag = excluded.flag").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: mark articles: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("mark articles: %w", err)
	}
	return nil
}

func (r *localRepository) MissingArticleIDs(ctx context.Context) ([]string, error) {
	return r.selectStrings(ctx, selectMissingArticleIDs)
}

func (r *localRepository) UpsertArticles(ctx context.Context, articles []models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	for i := range articles {
		article := &articles[i]
		_, err = r.ExecContext(ctx, upsertArticleQuery,
			article.ArticleID, article.FeedID, article.Title, article.Author,
			article.ContentHTML, article.ExternalURL, article.Published)
		if err != nil {
			return fmt.Errorf("upsert article %s: %w", article.ArticleID, err)
		}
	}
	return nil
}

// ── Sync state ──────────────────────────────────────────────────────────────

func (r *localRepository) SyncState(ctx context.Context, key string) (string, error) {
	var value string
	err := r.QueryRowContext(ctx, selectSyncState, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select sync state %s: %w", key, err)
	}
	return value, nil
}

func (r *localRepository) SetSyncState(ctx context.Context, key, value string) error {
	release, err := r.beginWrite()
	if err != nil {
		return err
	}
	defer release()

	if _, err = r.ExecContext(ctx, upsertSyncState, key, value); err != nil {
		return fmt.Errorf("set sync state %s: %w", key, err)
	}
	return nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (r *localRepository) selectStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return out, nil
}

func scanFeed(rows *sql.Rows) (models.Feed, error) {
	var feed models.Feed
	err := rows.Scan(&feed.FeedID, &feed.URL, &feed.Name, &feed.EditedName, &feed.ExternalID, &feed.HomePageURL)
	if err != nil {
		return models.Feed{}, fmt.Errorf("scan feed: %w", err)
	}
	return feed, nil
}
