package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   uint
	Name string
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database in nested directory", dbPath: filepath.Join(t.TempDir(), "data", "test.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Initialize(tt.dbPath, false, nil)
			require.NoError(t, err)
			defer db.Close()

			assert.NoError(t, db.HealthCheck(context.Background()))
		})
	}
}

func TestAutoMigrate(t *testing.T) {
	db, err := Initialize(":memory:", false, nil)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate(&sample{}))
	require.NoError(t, db.Create(&sample{Name: "a"}).Error)

	var count int64
	require.NoError(t, db.Model(&sample{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHealthCheckNil(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck(context.Background()))
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Initialize(":memory:", false, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck(context.Background()))
}
