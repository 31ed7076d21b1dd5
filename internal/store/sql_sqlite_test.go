package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buckylist/bucky/internal/config"
	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/models"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "plain file path", dsn: "bucky.db", want: "bucky.db?_foreign_keys=on"},
		{name: "existing options", dsn: "bucky.db?cache=shared", want: "bucky.db?cache=shared&_foreign_keys=on"},
		{name: "already set", dsn: "bucky.db?_foreign_keys=off", want: "bucky.db?_foreign_keys=off"},
		{name: "short form already set", dsn: "bucky.db?_fk=true", want: "bucky.db?_fk=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "bucky.db"),
	}

	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return db
}

func TestSQLite_DeleteBucketListCascadesItems(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteTestDB(t)
	repos := NewRepositories(db, logger.Nop())

	user, err := repos.UserRepository.CreateUser(ctx, models.User{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "irrelevant",
	})
	require.NoError(t, err)

	bucketlist, err := repos.BucketListRepository.Create(ctx, models.BucketList{
		Title:     "travel",
		CreatedBy: user.UserID,
	})
	require.NoError(t, err)

	_, err = repos.ItemRepository.Create(ctx, models.Item{
		BucketListID: bucketlist.ID,
		Title:        "visit japan",
	})
	require.NoError(t, err)
	_, err = repos.ItemRepository.Create(ctx, models.Item{
		BucketListID: bucketlist.ID,
		Title:        "climb kilimanjaro",
	})
	require.NoError(t, err)

	// pin one pooled connection so the delete below runs on a freshly
	// opened one; foreign keys must be on there too
	held, err := db.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	require.NoError(t, repos.BucketListRepository.Delete(ctx, bucketlist.ID))

	items, err := repos.ItemRepository.ListByBucketList(ctx, bucketlist.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	var orphans int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items;").Scan(&orphans))
	assert.Zero(t, orphans, "items must be removed together with their bucketlist")
}

func TestSQLite_ForeignKeysOnEveryPooledConnection(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteTestDB(t)

	first, err := db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()

	second, err := db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys;").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d must have foreign keys enabled", i+1)
	}
}
