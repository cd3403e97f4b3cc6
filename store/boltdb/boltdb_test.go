package boltdb_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
	"github.com/ayoisaiah/lumen/store/boltdb"
	"github.com/ayoisaiah/lumen/store/storetest"
)

func TestClient(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.DB {
		c, err := boltdb.Open(
			context.Background(),
			filepath.Join(t.TempDir(), "lumen.db"),
		)
		require.NoError(t, err)

		return c
	})
}

func TestOpenLocked(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "lumen.db")

	c, err := boltdb.Open(ctx, dbPath)
	require.NoError(t, err)

	defer c.Close()

	_, err = boltdb.Open(ctx, dbPath)
	assert.ErrorIs(t, err, store.ErrLocked)
}

func TestReopenKeepsSessions(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "lumen.db")

	c, err := boltdb.Open(ctx, dbPath)
	require.NoError(t, err)

	sess := &models.Session{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().Add(-time.Hour),
		Phase:      models.Work,
		PresetName: models.PomodoroPreset,
		Rounds:     1,
	}

	require.NoError(t, c.CreateSession(ctx, sess))
	require.NoError(t, c.Close())

	c, err = boltdb.Open(ctx, dbPath)
	require.NoError(t, err)

	defer c.Close()

	got, err := c.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, sess.StartedAt.Equal(got.StartedAt))

	presets, err := c.ListPresets(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 2)
}
