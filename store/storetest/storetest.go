// Package storetest holds behaviour checks shared by every store.DB driver.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

// Factory returns a freshly opened, seeded store. The store is closed by
// the suite.
type Factory func(t *testing.T) store.DB

// base is a fixed reference time truncated to the precision both drivers
// keep.
var base = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// timeComparer compares instants while ignoring location and monotonic
// clock readings, which do not survive a round trip through storage.
var timeComparer = cmp.Comparer(func(a, b time.Time) bool {
	return a.Equal(b)
})

// Run exercises a store.DB implementation.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, db store.DB)
	}{
		{"SeedsDefaultPresets", testSeedsDefaultPresets},
		{"PresetCRUD", testPresetCRUD},
		{"DuplicatePresetName", testDuplicatePresetName},
		{"InvalidPresetRejected", testInvalidPresetRejected},
		{"TaskCRUD", testTaskCRUD},
		{"EmptyTaskTitleRejected", testEmptyTaskTitleRejected},
		{"DeleteTaskKeepsSessions", testDeleteTaskKeepsSessions},
		{"SessionRoundTrip", testSessionRoundTrip},
		{"ListSessionsNewestFirst", testListSessionsNewestFirst},
		{"ListSessionsFilter", testListSessionsFilter},
		{"DeleteSessions", testDeleteSessions},
		{"PlantCRUD", testPlantCRUD},
		{"PlantLevelsClamped", testPlantLevelsClamped},
		{"MissingRecords", testMissingRecords},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := newStore(t)

			t.Cleanup(func() {
				assert.NoError(t, db.Close())
			})

			tc.fn(t, db)
		})
	}
}

func newSession(startedAt time.Time, taskID *string) *models.Session {
	return &models.Session{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		StartedAt:  startedAt,
		Phase:      models.Work,
		PresetName: models.PomodoroPreset,
		Rounds:     1,
	}
}

func sessionIDs(sessions []*models.Session) []string {
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}

	return ids
}

func testSeedsDefaultPresets(t *testing.T, db store.DB) {
	ctx := context.Background()

	presets, err := db.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	want := models.DefaultPresets()

	opts := cmp.Options{
		timeComparer,
		cmpopts.IgnoreFields(models.Preset{}, "ID", "CreatedAt"),
	}

	for i := range want {
		if diff := cmp.Diff(want[i], presets[i], opts); diff != "" {
			t.Errorf("preset %d mismatch (-want +got):\n%s", i, diff)
		}
	}

	// seeding is idempotent
	require.NoError(t, store.Seed(ctx, db))

	presets, err = db.ListPresets(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 2)
}

func testPresetCRUD(t *testing.T, db store.DB) {
	ctx := context.Background()

	p := &models.Preset{
		ID:         uuid.NewString(),
		Name:       "Deep Work",
		Work:       50 * time.Minute,
		ShortBreak: 10 * time.Minute,
		LongBreak:  30 * time.Minute,
		Rounds:     3,
		CreatedAt:  base.Add(time.Hour),
	}

	require.NoError(t, db.CreatePreset(ctx, p))

	got, err := db.GetPresetByName(ctx, "deep work")
	require.NoError(t, err)

	if diff := cmp.Diff(p, got, timeComparer); diff != "" {
		t.Errorf("preset mismatch (-want +got):\n%s", diff)
	}

	p.Rounds = 5
	require.NoError(t, db.UpdatePreset(ctx, p))

	got, err = db.GetPresetByName(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rounds)

	require.NoError(t, db.DeletePreset(ctx, p.ID))

	_, err = db.GetPresetByName(ctx, p.Name)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testDuplicatePresetName(t *testing.T, db store.DB) {
	ctx := context.Background()

	dup := &models.Preset{
		ID:         uuid.NewString(),
		Name:       "pomodoro",
		Work:       time.Minute,
		ShortBreak: time.Minute,
		LongBreak:  time.Minute,
		Rounds:     1,
		CreatedAt:  base,
	}

	err := db.CreatePreset(ctx, dup)
	assert.ErrorIs(t, err, store.ErrDuplicatePreset)

	quick, err := db.GetPresetByName(ctx, models.QuickFocusPreset)
	require.NoError(t, err)

	quick.Name = models.PomodoroPreset

	err = db.UpdatePreset(ctx, quick)
	assert.ErrorIs(t, err, store.ErrDuplicatePreset)
}

func testInvalidPresetRejected(t *testing.T, db store.DB) {
	ctx := context.Background()

	cases := []struct {
		name   string
		preset models.Preset
		want   error
	}{
		{
			name:   "empty name",
			preset: models.Preset{Work: time.Minute, ShortBreak: time.Minute, LongBreak: time.Minute, Rounds: 1},
			want:   models.ErrEmptyName,
		},
		{
			name:   "zero work",
			preset: models.Preset{Name: "x", ShortBreak: time.Minute, LongBreak: time.Minute, Rounds: 1},
			want:   models.ErrInvalidDuration,
		},
		{
			name:   "sub-second work",
			preset: models.Preset{Name: "x", Work: 500 * time.Millisecond, ShortBreak: time.Minute, LongBreak: time.Minute, Rounds: 1},
			want:   models.ErrInvalidDuration,
		},
		{
			name:   "fractional short break",
			preset: models.Preset{Name: "x", Work: time.Minute, ShortBreak: 90*time.Second + 500*time.Millisecond, LongBreak: time.Minute, Rounds: 1},
			want:   models.ErrInvalidDuration,
		},
		{
			name:   "zero rounds",
			preset: models.Preset{Name: "x", Work: time.Minute, ShortBreak: time.Minute, LongBreak: time.Minute},
			want:   models.ErrInvalidRounds,
		},
	}

	for _, tc := range cases {
		p := tc.preset
		p.ID = uuid.NewString()

		err := db.CreatePreset(ctx, &p)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	presets, err := db.ListPresets(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 2)
}

func testTaskCRUD(t *testing.T, db store.DB) {
	ctx := context.Background()

	task := models.NewTask("Write report", "work", "writing")
	task.CreatedAt = base
	task.Description = "quarterly numbers"

	require.NoError(t, db.CreateTask(ctx, task))

	got, err := db.GetTask(ctx, task.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(task, got, timeComparer); diff != "" {
		t.Errorf("task mismatch (-want +got):\n%s", diff)
	}

	older := models.NewTask("Read paper")
	older.CreatedAt = base.Add(-time.Hour)
	require.NoError(t, db.CreateTask(ctx, older))

	task.Title = "Write final report"
	task.Tags = []string{"work"}
	require.NoError(t, db.UpdateTask(ctx, task))

	tasks, err := db.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, "Write final report", tasks[0].Title)
	assert.Equal(t, []string{"work"}, tasks[0].Tags)
	assert.Equal(t, older.ID, tasks[1].ID)

	require.NoError(t, db.DeleteTask(ctx, older.ID))

	_, err = db.GetTask(ctx, older.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testEmptyTaskTitleRejected(t *testing.T, db store.DB) {
	ctx := context.Background()

	task := models.NewTask("   ")

	err := db.CreateTask(ctx, task)
	assert.ErrorIs(t, err, models.ErrEmptyTitle)

	tasks, err := db.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func testDeleteTaskKeepsSessions(t *testing.T, db store.DB) {
	ctx := context.Background()

	task := models.NewTask("Study")
	require.NoError(t, db.CreateTask(ctx, task))

	owned := []*models.Session{
		newSession(base, &task.ID),
		newSession(base.Add(time.Hour), &task.ID),
	}

	for _, s := range owned {
		require.NoError(t, db.CreateSession(ctx, s))
	}

	require.NoError(t, db.DeleteTask(ctx, task.ID))

	sessions, err := db.ListSessions(ctx, store.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	for _, s := range sessions {
		assert.Nil(t, s.TaskID, "session %s still references deleted task", s.ID)
	}
}

func testSessionRoundTrip(t *testing.T, db store.DB) {
	ctx := context.Background()

	sess := newSession(base, nil)
	require.NoError(t, db.CreateSession(ctx, sess))

	got, err := db.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, got.Ended())
	assert.Nil(t, got.TaskID)

	sess.Phase = models.Paused
	sess.Finish(base.Add(25*time.Minute), true)
	sess.Rounds = 4
	require.NoError(t, db.UpdateSession(ctx, sess))

	got, err = db.GetSession(ctx, sess.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(sess, got, timeComparer); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, got.CompletedAt.Sub(got.StartedAt), got.Duration)
}

func testListSessionsNewestFirst(t *testing.T, db store.DB) {
	ctx := context.Background()

	var want []string

	for i := 4; i >= 0; i-- {
		s := newSession(base.Add(time.Duration(i)*24*time.Hour), nil)
		want = append(want, s.ID)
	}

	// insert out of order
	for _, i := range []int{2, 0, 4, 1, 3} {
		s := newSession(base.Add(time.Duration(4-i)*24*time.Hour), nil)
		s.ID = want[i]
		require.NoError(t, db.CreateSession(ctx, s))
	}

	sessions, err := db.ListSessions(ctx, store.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, want, sessionIDs(sessions))

	// moving a session's start time must move it in the listing
	moved, err := db.GetSession(ctx, want[4])
	require.NoError(t, err)

	moved.StartedAt = base.Add(10 * 24 * time.Hour)
	require.NoError(t, db.UpdateSession(ctx, moved))

	sessions, err = db.ListSessions(ctx, store.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 5)
	assert.Equal(t, moved.ID, sessions[0].ID)
}

func testListSessionsFilter(t *testing.T, db store.DB) {
	ctx := context.Background()

	task := models.NewTask("Filter me")
	require.NoError(t, db.CreateTask(ctx, task))

	day := 24 * time.Hour

	s1 := newSession(base, nil)
	s2 := newSession(base.Add(day), &task.ID)
	s3 := newSession(base.Add(2*day), nil)
	s4 := newSession(base.Add(3*day), &task.ID)

	for _, s := range []*models.Session{s1, s2, s3, s4} {
		require.NoError(t, db.CreateSession(ctx, s))
	}

	cases := []struct {
		name   string
		filter store.SessionFilter
		want   []string
	}{
		{
			name:   "since",
			filter: store.SessionFilter{Since: base.Add(day)},
			want:   []string{s4.ID, s3.ID, s2.ID},
		},
		{
			name:   "until",
			filter: store.SessionFilter{Until: base.Add(day)},
			want:   []string{s2.ID, s1.ID},
		},
		{
			name: "range",
			filter: store.SessionFilter{
				Since: base.Add(12 * time.Hour),
				Until: base.Add(2*day + time.Hour),
			},
			want: []string{s3.ID, s2.ID},
		},
		{
			name:   "task",
			filter: store.SessionFilter{TaskID: task.ID},
			want:   []string{s4.ID, s2.ID},
		},
		{
			name: "task and since",
			filter: store.SessionFilter{
				Since:  base.Add(2 * day),
				TaskID: task.ID,
			},
			want: []string{s4.ID},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions, err := db.ListSessions(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sessionIDs(sessions))
		})
	}
}

func testDeleteSessions(t *testing.T, db store.DB) {
	ctx := context.Background()

	s1 := newSession(base, nil)
	s2 := newSession(base.Add(time.Hour), nil)
	s3 := newSession(base.Add(2*time.Hour), nil)

	for _, s := range []*models.Session{s1, s2, s3} {
		require.NoError(t, db.CreateSession(ctx, s))
	}

	require.NoError(t, db.DeleteSessions(ctx, s1.ID, s3.ID))
	require.NoError(t, db.DeleteSessions(ctx))

	sessions, err := db.ListSessions(ctx, store.SessionFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{s2.ID}, sessionIDs(sessions))

	_, err = db.GetSession(ctx, s1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testPlantCRUD(t *testing.T, db store.DB) {
	ctx := context.Background()

	watered := base.Add(time.Hour)

	plant := &models.GardenPlant{
		ID:          uuid.NewString(),
		Name:        "Fernando",
		PlantType:   "glow-fern",
		Color:       models.DefaultPlantColor,
		GrowthLevel: 1,
		WaterLevel:  80,
		WaterCount:  1,
		WaterNeeded: models.DefaultWaterNeeded,
		CreatedAt:   base,
	}

	require.NoError(t, db.CreatePlant(ctx, plant))

	plant.LastWatered = &watered
	plant.GrowthLevel = 2
	require.NoError(t, db.UpdatePlant(ctx, plant))

	got, err := db.GetPlant(ctx, plant.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(plant, got, timeComparer); diff != "" {
		t.Errorf("plant mismatch (-want +got):\n%s", diff)
	}

	plants, err := db.ListPlants(ctx)
	require.NoError(t, err)
	assert.Len(t, plants, 1)

	require.NoError(t, db.DeletePlant(ctx, plant.ID))

	plants, err = db.ListPlants(ctx)
	require.NoError(t, err)
	assert.Empty(t, plants)

	err = db.CreatePlant(ctx, &models.GardenPlant{ID: uuid.NewString(), PlantType: "glow-fern"})
	assert.ErrorIs(t, err, models.ErrEmptyName)
}

func testPlantLevelsClamped(t *testing.T, db store.DB) {
	ctx := context.Background()

	plant := &models.GardenPlant{
		ID:          uuid.NewString(),
		Name:        "Overgrown",
		PlantType:   "quantum-vine",
		GrowthLevel: 9,
		WaterLevel:  250,
		WaterCount:  7,
		CreatedAt:   base,
	}

	require.NoError(t, db.CreatePlant(ctx, plant))

	got, err := db.GetPlant(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MaxGrowthLevel, got.GrowthLevel)
	assert.Equal(t, models.MaxWaterLevel, got.WaterLevel)
	assert.Equal(t, models.DefaultWaterNeeded, got.WaterNeeded)
	assert.Equal(t, got.WaterNeeded, got.WaterCount)

	got.WaterLevel = -10
	require.NoError(t, db.UpdatePlant(ctx, got))

	got, err = db.GetPlant(ctx, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.WaterLevel)
}

func testMissingRecords(t *testing.T, db store.DB) {
	ctx := context.Background()
	missing := uuid.NewString()

	_, err := db.GetTask(ctx, missing)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = db.GetSession(ctx, missing)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = db.GetPlant(ctx, missing)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = db.GetPresetByName(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	task := models.NewTask("ghost")
	task.ID = missing
	assert.ErrorIs(t, db.UpdateTask(ctx, task), store.ErrNotFound)
	assert.ErrorIs(t, db.DeleteTask(ctx, missing), store.ErrNotFound)
	assert.ErrorIs(t, db.UpdateSession(ctx, newSession(base, nil)), store.ErrNotFound)
	assert.ErrorIs(t, db.DeletePlant(ctx, missing), store.ErrNotFound)
	assert.ErrorIs(t, db.DeletePreset(ctx, missing), store.ErrNotFound)
}
