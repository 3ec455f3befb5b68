package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/MKhiriev/go-feed-sync/models"
)

func newTestSyncStatusRepo(t *testing.T) (*syncStatusRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &syncStatusRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestInsertStatuses_Success(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	ctx := context.Background()
	statuses := []models.SyncStatus{
		{ArticleID: "a1", Key: models.StatusKeyRead, Flag: true},
		{ArticleID: "a2", Key: models.StatusKeyStarred, Flag: false},
	}

	mock.ExpectExec("INSERT INTO sync_statuses").
		WithArgs("a1", models.StatusKeyRead, true, false, "a2", models.StatusKeyStarred, false, false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.InsertStatuses(ctx, statuses); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertStatuses_Empty(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	// пустой срез — запросов к БД быть не должно
	if err := repo.InsertStatuses(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query issued: %v", err)
	}
}

func TestInsertStatuses_Suspended(t *testing.T) {
	repo, _, db := newTestSyncStatusRepo(t)
	defer db.Close()

	repo.Suspend()
	err := repo.InsertStatuses(context.Background(), []models.SyncStatus{{ArticleID: "a1", Key: models.StatusKeyRead}})
	if !errors.Is(err, ErrDatabaseSuspended) {
		t.Fatalf("expected ErrDatabaseSuspended, got %v", err)
	}

	repo.Resume()
}

func TestSelectForProcessing_MarksInFlight(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"article_id", "status_key", "flag"}).
		AddRow("a1", "read", true).
		AddRow("a2", "starred", false)

	// выбор и пометка selected — один атомарный запрос
	mock.ExpectQuery("UPDATE sync_statuses").
		WillReturnRows(rows)

	statuses, err := repo.SelectForProcessing(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].ArticleID != "a1" || statuses[0].Key != models.StatusKeyRead || !statuses[0].Flag {
		t.Errorf("unexpected first status: %+v", statuses[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSelectForProcessing_InsertDuringBatchStaysPending(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, filepath.Join(t.TempDir(), "statuses.db"), logger.Nop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	repo := NewSyncStatusRepository(db, logger.Nop())

	if err = repo.InsertStatuses(ctx, []models.SyncStatus{{ArticleID: "a1", Key: models.StatusKeyRead, Flag: true}}); err != nil {
		t.Fatalf("insert a1: %v", err)
	}

	first, err := repo.SelectForProcessing(ctx)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if len(first) != 1 || first[0].ArticleID != "a1" {
		t.Fatalf("expected first claim to return a1, got %+v", first)
	}

	// отметка пользователя, прилетевшая пока первая партия в полёте
	if err = repo.InsertStatuses(ctx, []models.SyncStatus{{ArticleID: "a2", Key: models.StatusKeyStarred, Flag: true}}); err != nil {
		t.Fatalf("insert a2: %v", err)
	}

	second, err := repo.SelectForProcessing(ctx)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if len(second) != 1 || second[0].ArticleID != "a2" {
		t.Fatalf("expected a2 to stay pending for the next claim, got %+v", second)
	}

	if err = repo.DeleteSelected(ctx, []string{"a1"}, models.StatusKeyRead); err != nil {
		t.Fatalf("delete acknowledged batch: %v", err)
	}
	count, err := repo.PendingCount(ctx)
	if err != nil {
		t.Fatalf("count statuses: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a2 to survive the acknowledged delete, got %d rows", count)
	}
}

func TestSelectForProcessing_QueryError(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE sync_statuses").
		WillReturnError(errors.New("db failure"))

	_, err := repo.SelectForProcessing(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPendingCount(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.PendingCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}

func TestPendingArticleIDs(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"article_id"}).
		AddRow("a1").
		AddRow("a3")

	mock.ExpectQuery("SELECT article_id").
		WithArgs(models.StatusKeyRead).
		WillReturnRows(rows)

	ids, err := repo.PendingArticleIDs(context.Background(), models.StatusKeyRead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if _, ok := ids["a1"]; !ok {
		t.Error("expected a1 in pending set")
	}
	if _, ok := ids["a3"]; !ok {
		t.Error("expected a3 in pending set")
	}
}

func TestDeleteSelected_Success(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sync_statuses").
		WithArgs("a1", "a2", models.StatusKeyRead).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.DeleteSelected(context.Background(), []string{"a1", "a2"}, models.StatusKeyRead)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResetSelected_ReturnsToPending(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_statuses").
		WithArgs(false, "a1", models.StatusKeyStarred).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ResetSelected(context.Background(), []string{"a1"}, models.StatusKeyStarred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newTestSyncStatusRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sync_statuses").
		WillReturnResult(sqlmock.NewResult(0, 5))

	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
