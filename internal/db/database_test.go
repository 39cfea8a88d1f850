package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn     string
		name    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/shop?sslmode=disable", name: "postgres"},
		{dsn: "postgresql://u:p@localhost/shop", name: "postgres"},
		{dsn: "sqlite::memory:", name: "sqlite"},
		{dsn: "file:catalog.db?_pragma=busy_timeout(5000)", name: "sqlite"},
		{dsn: "mysql://root@localhost/shop", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.dsn, func(t *testing.T) {
			t.Parallel()

			d, err := Dialector(tt.dsn)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}

func TestOpen_SQLiteMemory(t *testing.T) {
	gdb, err := Open(context.Background(), "sqlite::memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
}

func TestOpen_CanceledContextFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, "sqlite::memory:")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), err)
}

func TestPingOrClose_ClosesPoolOnFailure(t *testing.T) {
	gdb, err := Open(context.Background(), "sqlite::memory:")
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, pingOrClose(ctx, sqlDB), context.Canceled)

	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}
