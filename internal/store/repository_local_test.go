package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

func newTestLocalRepo(t *testing.T) (*localRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &localRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestEnsureFolder_Existing(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"name", "external_id"}).
		AddRow("Tech", "col-42")

	mock.ExpectQuery("SELECT name, external_id").
		WithArgs("Tech").
		WillReturnRows(rows)

	folder, err := repo.EnsureFolder(context.Background(), "Tech")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.ExternalID != "col-42" {
		t.Errorf("expected external id col-42, got %s", folder.ExternalID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEnsureFolder_CreatesWhenAbsent(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, external_id").
		WithArgs("News").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO folders").
		WithArgs("News").
		WillReturnResult(sqlmock.NewResult(1, 1))

	folder, err := repo.EnsureFolder(context.Background(), "News")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.Name != "News" || folder.ExternalID != "" {
		t.Errorf("unexpected folder: %+v", folder)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetFolderExternalID_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE folders").
		WithArgs("col-1", "Missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetFolderExternalID(context.Background(), "Missing", "col-1")
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestFolderByExternalID_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, external_id").
		WithArgs("col-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FolderByExternalID(context.Background(), "col-404")
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
}

func TestRenameFolder_CarriesMemberships(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE folders").
		WithArgs("Science", "Tech").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE feed_folders").
		WithArgs("Science", "Tech").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.RenameFolder(context.Background(), "Tech", "Science"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteFolder_RemovesMembershipsFirst(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM feed_folders").
		WithArgs("Tech").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM folders").
		WithArgs("Tech").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteFolder(context.Background(), "Tech"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFeedByExternalID_Success(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"feed_id", "url", "name", "edited_name", "external_id", "home_page_url"}).
		AddRow("f1", "https://example.com/feed", "Example", "", "sub-1", "https://example.com")

	mock.ExpectQuery("SELECT feed_id").
		WithArgs("sub-1").
		WillReturnRows(rows)

	feed, err := repo.FeedByExternalID(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feed.FeedID != "f1" || feed.URL != "https://example.com/feed" {
		t.Errorf("unexpected feed: %+v", feed)
	}
}

func TestFeedByID_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT feed_id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FeedByID(context.Background(), "missing")
	if !errors.Is(err, ErrFeedNotFound) {
		t.Fatalf("expected ErrFeedNotFound, got %v", err)
	}
}

func TestDeleteFeed_RemovesDependents(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM feed_folders").
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM articles").
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec("DELETE FROM feeds").
		WithArgs("f1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteFeed(context.Background(), "f1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestArticleIDsWithStatus(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"article_id"}).
		AddRow("a1").
		AddRow("a2")

	mock.ExpectQuery("SELECT article_id").
		WithArgs(models.StatusKeyStarred, true).
		WillReturnRows(rows)

	ids, err := repo.ArticleIDsWithStatus(context.Background(), models.StatusKeyStarred, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
}

func TestMarkArticles_UpsertsFlags(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO article_statuses").
		WithArgs("a1", models.StatusKeyRead, true, "a2", models.StatusKeyRead, true).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.MarkArticles(context.Background(), []string{"a1", "a2"}, models.StatusKeyRead, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkArticles_Empty(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	if err := repo.MarkArticles(context.Background(), nil, models.StatusKeyRead, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query issued: %v", err)
	}
}

func TestMissingArticleIDs(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"article_id"}).
		AddRow("a9")

	mock.ExpectQuery("SELECT DISTINCT s.article_id").
		WillReturnRows(rows)

	ids, err := repo.MissingArticleIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "a9" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestSyncState_UnsetReturnsEmpty(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs("change_cursor").
		WillReturnError(sql.ErrNoRows)

	value, err := repo.SyncState(context.Background(), "change_cursor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value, got %q", value)
	}
}

func TestSetSyncState(t *testing.T) {
	repo, mock, db := newTestLocalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs("change_cursor", "cur-7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetSyncState(context.Background(), "change_cursor", "cur-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAllFeedsAndFolders_Suspended(t *testing.T) {
	repo, _, db := newTestLocalRepo(t)
	defer db.Close()

	repo.Suspend()
	defer repo.Resume()

	err := repo.DeleteAllFeedsAndFolders(context.Background())
	if !errors.Is(err, ErrDatabaseSuspended) {
		t.Fatalf("expected ErrDatabaseSuspended, got %v", err)
	}
}
