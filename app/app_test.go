package app

import (
	"bytes"
	"context"
	"flag"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/lumen/internal/config"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/testutil"
	"github.com/ayoisaiah/lumen/store"
)

func newTestEnv(t *testing.T) (*env, *bytes.Buffer) {
	t.Helper()

	db := testutil.NewStore(t)

	var out bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &out

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	return &env{
		cfg: &config.Config{},
		db:  db,
		log: io.NopCloser(nil),
	}, &out
}

func newContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("lumen", flag.ContinueOnError)

	for _, f := range flags {
		require.NoError(t, f.Apply(set))
	}

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, driver := range []string{config.DriverSQLite, config.DriverBolt} {
		db, err := openStore(ctx, driver, filepath.Join(dir, driver, "lumen.db"))
		require.NoError(t, err, driver)

		presets, err := db.ListPresets(ctx)
		require.NoError(t, err)
		assert.Len(t, presets, 2, driver)

		require.NoError(t, db.Close())
	}

	_, err := openStore(ctx, "postgres", filepath.Join(dir, "x"))
	assert.ErrorIs(t, err, store.ErrUnknownDriver)
}

func TestTaskCommands(t *testing.T) {
	e, out := newTestEnv(t)

	err := taskAddAction(newContext(t,
		[]cli.Flag{descriptionFlag, tagsFlag},
		"--description", "chapter two", "--tag", "thesis,writing", "Write draft",
	), e)
	require.NoError(t, err)

	err = taskAddAction(newContext(t, []cli.Flag{descriptionFlag, tagsFlag}), e)
	assert.ErrorIs(t, err, errMissingArg)

	err = taskRenameAction(newContext(t, nil, "write draft", "Edit draft"), e)
	require.NoError(t, err)

	require.NoError(t, taskListAction(newContext(t, []cli.Flag{jsonFlag}, "--json"), e))
	assert.Contains(t, out.String(), `"title": "Edit draft"`)
	assert.Contains(t, out.String(), `"thesis"`)

	require.NoError(t, taskDeleteAction(newContext(t, nil, "Edit draft"), e))

	list, err := e.db.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPresetCommands(t *testing.T) {
	e, _ := newTestEnv(t)
	ctx := context.Background()
	flags := []cli.Flag{workFlag, shortBreakFlag, longBreakFlag, roundsFlag}

	err := presetAddAction(newContext(t, flags, "--work", "50m", "--rounds", "2", "Deep"), e)
	require.NoError(t, err)

	p, err := e.db.GetPresetByName(ctx, "deep")
	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, p.Work)
	assert.Equal(t, 5*time.Minute, p.ShortBreak)
	assert.Equal(t, 15*time.Minute, p.LongBreak)
	assert.Equal(t, 2, p.Rounds)

	err = presetAddAction(newContext(t, flags, "Deep"), e)
	assert.ErrorIs(t, err, store.ErrDuplicatePreset)

	err = presetAddAction(newContext(t, flags, "--rounds", "0", "Broken"), e)
	assert.ErrorIs(t, err, models.ErrInvalidRounds)

	err = presetAddAction(newContext(t, flags, "--work", "500ms", "Tiny"), e)
	assert.ErrorIs(t, err, models.ErrInvalidDuration)

	require.NoError(t, presetDeleteAction(newContext(t, nil, "Deep"), e))

	err = presetDeleteAction(newContext(t, nil, "Deep"), e)
	assert.ErrorIs(t, err, errUnknownPreset)
}

func TestSessionCommands(t *testing.T) {
	e, out := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	for i, age := range []time.Duration{time.Hour, 48 * time.Hour, 10 * 24 * time.Hour} {
		started := now.Add(-age)
		sess := &models.Session{
			ID:         string(rune('a' + i)),
			StartedAt:  started,
			Phase:      models.Work,
			PresetName: models.PomodoroPreset,
			Rounds:     1,
		}
		sess.Finish(started.Add(25*time.Minute), i != 1)

		require.NoError(t, e.db.CreateSession(ctx, sess))
	}

	listFlags := []cli.Flag{sinceFlag, untilFlag, taskFlag, jsonFlag}

	require.NoError(t, sessionListAction(newContext(t, listFlags, "--since", "3 days ago"), e))
	assert.Contains(t, out.String(), "abandoned")
	assert.Contains(t, out.String(), "completed")

	deleteFlags := []cli.Flag{sinceFlag, untilFlag, taskFlag, yesFlag}

	err := sessionDeleteAction(newContext(t, deleteFlags, "--yes", "--until", "5 days ago"), e)
	require.NoError(t, err)

	left, err := e.db.ListSessions(ctx, store.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, "a", left[0].ID)
	assert.Equal(t, "b", left[1].ID)
}

func TestUntilDateCoversWholeDay(t *testing.T) {
	e, _ := newTestEnv(t)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	flags := []cli.Flag{sinceFlag, untilFlag, taskFlag}

	filter, err := sessionFilter(newContext(t, flags, "--until", "2024-03-01"), e, now)
	require.NoError(t, err)

	evening := &models.Session{
		StartedAt: time.Date(2024, 3, 1, 21, 30, 0, 0, filter.Until.Location()),
	}
	nextDay := &models.Session{
		StartedAt: time.Date(2024, 3, 2, 0, 0, 1, 0, filter.Until.Location()),
	}

	assert.True(t, filter.Match(evening))
	assert.False(t, filter.Match(nextDay))
}

func TestStatsJSON(t *testing.T) {
	e, out := newTestEnv(t)

	flags := []cli.Flag{sinceFlag, untilFlag, taskFlag, topFlag, jsonFlag}

	require.NoError(t, statsAction(newContext(t, flags, "--json"), e))
	assert.Contains(t, out.String(), `"total": 0`)
}

func TestGardenCommands(t *testing.T) {
	e, out := newTestEnv(t)
	ctx := context.Background()

	flags := []cli.Flag{plantTypeFlag, plantColorFlag}

	err := gardenPlantAction(newContext(t, flags, "--type", "Herb", "Basil"), e)
	require.NoError(t, err)

	plants, err := e.db.ListPlants(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)

	require.NoError(t, gardenWaterAction(newContext(t, nil, plants[0].ID), e))

	p, err := e.db.GetPlant(ctx, plants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.WaterCount)

	require.NoError(t, gardenListAction(newContext(t, []cli.Flag{jsonFlag}), e))
	assert.Contains(t, out.String(), "Basil")
}

func TestGrowthBar(t *testing.T) {
	assert.Equal(t, "○○○○○", growthBar(0))
	assert.Equal(t, "●●○○○", growthBar(2))
	assert.Equal(t, "●●●●●", growthBar(models.MaxGrowthLevel))
}
