// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	claimPendingStatuses = `
		UPDATE sync_statuses
		SET selected = 1
		WHERE selected = 0
		RETURNING article_id, status_key, flag;`

	countStatuses = `
		SELECT COUNT(*)
		FROM sync_statuses;`

	selectStatusIDsByKey = `
		SELECT article_id
		FROM sync_statuses
		WHERE status_key = $1;`

	deleteAllStatuses = `DELETE FROM sync_statuses;`

	selectFolders = `
		SELECT name, external_id
		FROM folders;`

	selectFolderByName = `
		SELECT name, external_id
		FROM folders
		WHERE name = $1;`

	selectFolderByExternalID = `
		SELECT name, external_id
		FROM folders
		WHERE external_id = $1;`

	insertFolder = `
		INSERT INTO folders (name, external_id)
		VALUES ($1, '');`

	updateFolderExternalID = `
		UPDATE folders
		SET external_id = $1
		WHERE name = $2;`

	renameFolderQuery = `
		UPDATE folders
		SET name = $1
		WHERE name = $2;`

	renameFolderMemberships = `
		UPDATE feed_folders
		SET folder_name = $1
		WHERE folder_name = $2;`

	deleteFolderQuery = `
		DELETE FROM folders
		WHERE name = $1;`

	deleteFolderMemberships = `
		DELETE FROM feed_folders
		WHERE folder_name = $1;`

	selectFeeds = `
		SELECT feed_id, url, name, edited_name, external_id, home_page_url
		FROM feeds;`

	selectFeedByID = `
		SELECT feed_id, url, name, edited_name, external_id, home_page_url
		FROM feeds
		WHERE feed_id = $1;`

	selectFeedByExternalID = `
		SELECT feed_id, url, name, edited_name, external_id, home_page_url
		FROM feeds
		WHERE external_id = $1;`

	upsertFeedQuery = `
		INSERT INTO feeds (feed_id, url, name, edited_name, external_id, home_page_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (feed_id) DO UPDATE SET
			url = excluded.url,
			name = excluded.name,
			edited_name = excluded.edited_name,
			external_id = excluded.external_id,
			home_page_url = excluded.home_page_url;`

	deleteFeedQuery = `
		DELETE FROM feeds
		WHERE feed_id = $1;`

	deleteFeedMemberships = `
		DELETE FROM feed_folders
		WHERE feed_id = $1;`

	deleteFeedArticles = `
		DELETE FROM articles
		WHERE feed_id = $1;`

	insertFeedMembership = `
		INSERT INTO feed_folders (feed_id, folder_name)
		VALUES ($1, $2)
		ON CONFLICT (feed_id, folder_name) DO NOTHING;`

	deleteFeedMembership = `
		DELETE FROM feed_folders
		WHERE feed_id = $1 AND folder_name = $2;`

	selectFeedIDsInFolder = `
		SELECT feed_id
		FROM feed_folders
		WHERE folder_name = $1;`

	selectFolderNamesForFeed = `
		SELECT folder_name
		FROM feed_folders
		WHERE feed_id = $1;`

	deleteAllFolders     = `DELETE FROM folders;`
	deleteAllFeeds       = `DELETE FROM feeds;`
	deleteAllMemberships = `DELETE FROM feed_folders;`

	selectArticleIDsWithStatus = `
		SELECT article_id
		FROM article_statuses
		WHERE status_key = $1 AND flag = $2;`

	selectMissingArticleIDs = `
		SELECT DISTINCT s.article_id
		FROM article_statuses s
		LEFT JOIN articles a ON a.article_id = s.article_id
		WHERE a.article_id IS NULL;`

	upsertArticleQuery = `
		INSERT INTO articles (article_id, feed_id, title, author, content_html, external_url, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (article_id) DO UPDATE SET
			feed_id = excluded.feed_id,
			title = excluded.title,
			author = excluded.author,
			content_html = excluded.content_html,
			external_url = excluded.external_url,
			published = excluded.published;`

	selectSyncState = `
		SELECT value
		FROM sync_state
		WHERE key = $1;`

	upsertSyncState = `
		INSERT INTO sync_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`
)
