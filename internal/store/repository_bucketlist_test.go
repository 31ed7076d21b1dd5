package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/models"
)

func newTestBucketListRepo(t *testing.T) (*bucketListRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &bucketListRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func bucketListColumns() []string {
	return []string{"bucketlist_id", "title", "description", "created_by", "date_created", "date_modified"}
}

func itemColumns() []string {
	return []string{"item_id", "bucketlist_id", "title", "description", "status", "date_created", "date_modified"}
}

func TestBucketListCreate_Success(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(bucketListColumns()).
		AddRow(1, "travel", "places to see", 42, now, now)

	mock.ExpectQuery("INSERT INTO bucketlists").
		WithArgs("travel", "places to see", int64(42)).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, models.BucketList{Title: "travel", Description: "places to see", CreatedBy: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.CreatedBy != 42 {
		t.Errorf("expected CreatedBy=42, got %d", created.CreatedBy)
	}
	if created.Items == nil || len(created.Items) != 0 {
		t.Errorf("expected empty items slice, got %v", created.Items)
	}
}

func TestBucketListGetByID_Success(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bucketlists").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bucketListColumns()).
			AddRow(1, "travel", "places to see", 42, now, now))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns()).
			AddRow(10, 1, "visit japan", "", false, now, now).
			AddRow(11, 1, "see aurora", "", true, now, now))

	found, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 1 {
		t.Errorf("expected ID=1, got %d", found.ID)
	}
	if len(found.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(found.Items))
	}
	if found.Items[0].Title != "visit japan" {
		t.Errorf("expected first item 'visit japan', got %q", found.Items[0].Title)
	}
}

func TestBucketListGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM bucketlists").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bucketListColumns()))

	_, err := repo.GetByID(ctx, 99)
	if !errors.Is(err, ErrBucketListNotFound) {
		t.Fatalf("expected ErrBucketListNotFound, got %v", err)
	}
}

func TestBucketListListByOwner_Success(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bucketlists").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bucketListColumns()).
			AddRow(1, "travel", "", 42, now, now).
			AddRow(2, "books", "", 42, now, now))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	bucketlists, err := repo.ListByOwner(ctx, 42, "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bucketlists) != 2 {
		t.Fatalf("expected 2 bucketlists, got %d", len(bucketlists))
	}
	if bucketlists[0].ID != 1 || bucketlists[1].ID != 2 {
		t.Errorf("expected creation order 1,2, got %d,%d", bucketlists[0].ID, bucketlists[1].ID)
	}
}

func TestBucketListListByOwner_TitleFilter(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bucketlists").
		WithArgs(int64(42), "%travel%").
		WillReturnRows(sqlmock.NewRows(bucketListColumns()).
			AddRow(1, "travel", "", 42, now, now))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	bucketlists, err := repo.ListByOwner(ctx, 42, "travel", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bucketlists) != 1 {
		t.Fatalf("expected 1 bucketlist, got %d", len(bucketlists))
	}
}

func TestBucketListListByOwner_QueryError(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM bucketlists").
		WithArgs(int64(42)).
		WillReturnError(errors.New("db network error"))

	_, err := repo.ListByOwner(ctx, 42, "", 20)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestBucketListUpdate_Success(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("UPDATE bucketlists").
		WillReturnRows(sqlmock.NewRows(bucketListColumns()).
			AddRow(1, "new title", "places to see", 42, now, now))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns()))

	updated, err := repo.Update(ctx, 1, models.BucketListPatch{Title: "new title"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("expected title 'new title', got %q", updated.Title)
	}
}

func TestBucketListUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE bucketlists").
		WillReturnRows(sqlmock.NewRows(bucketListColumns()))

	_, err := repo.Update(ctx, 99, models.BucketListPatch{Title: "new title"})
	if !errors.Is(err, ErrBucketListNotFound) {
		t.Fatalf("expected ErrBucketListNotFound, got %v", err)
	}
}

func TestBucketListDelete_Success(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM bucketlists").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBucketListDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestBucketListRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM bucketlists").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 99)
	if !errors.Is(err, ErrBucketListNotFound) {
		t.Fatalf("expected ErrBucketListNotFound, got %v", err)
	}
}
