package session

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

var errBoom = errors.New("boom")

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

// recorder stands in for every platform service.
type recorder struct {
	err      error
	titles   []string
	bodies   []string
	sounds   []string
	focus    []string
	pulses   int
	stopped  int
	requests int
}

func (r *recorder) RequestPermission(context.Context) error {
	r.requests++
	return r.err
}

func (r *recorder) Show(title, body, _ string) error {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)

	return r.err
}

func (r *recorder) Cancel(string) error { return r.err }

func (r *recorder) Play(name string) error {
	r.sounds = append(r.sounds, name)
	return r.err
}

func (r *recorder) Stop() error {
	r.stopped++
	return r.err
}

func (r *recorder) SetVolume(float64) error { return r.err }

func (r *recorder) RequestAccess(context.Context) error { return r.err }

func (r *recorder) Enable(context.Context) error {
	r.focus = append(r.focus, "enable")
	return r.err
}

func (r *recorder) Disable(context.Context) error {
	r.focus = append(r.focus, "disable")
	return r.err
}

func (r *recorder) Pulse(float64) error {
	r.pulses++
	return r.err
}

type memStore struct {
	err      error
	sessions map[string]models.Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.Session)}
}

func (s *memStore) CreateSession(_ context.Context, sess *models.Session) error {
	if s.err != nil {
		return s.err
	}

	s.sessions[sess.ID] = *sess

	return nil
}

func (s *memStore) UpdateSession(_ context.Context, sess *models.Session) error {
	if s.err != nil {
		return s.err
	}

	if _, ok := s.sessions[sess.ID]; !ok {
		return store.ErrNotFound
	}

	s.sessions[sess.ID] = *sess

	return nil
}

func (s *memStore) GetSession(_ context.Context, id string) (*models.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &sess, nil
}

func (s *memStore) ListSessions(
	_ context.Context,
	_ store.SessionFilter,
) ([]*models.Session, error) {
	if s.err != nil {
		return nil, s.err
	}

	list := make([]*models.Session, 0, len(s.sessions))

	for _, sess := range s.sessions {
		list = append(list, &sess)
	}

	return list, nil
}

func (s *memStore) DeleteSessions(_ context.Context, ids ...string) error {
	for _, id := range ids {
		delete(s.sessions, id)
	}

	return nil
}

func (s *memStore) only(t *testing.T) models.Session {
	t.Helper()

	require.Len(t, s.sessions, 1)

	for _, sess := range s.sessions {
		return sess
	}

	return models.Session{}
}

type fakeGarden struct {
	err     error
	thirsty []*models.GardenPlant
	rewards int
}

func (g *fakeGarden) Reward(context.Context) (*models.GardenPlant, error) {
	if g.err != nil {
		return nil, g.err
	}

	g.rewards++

	return &models.GardenPlant{ID: "p1", PlantType: "glow-fern"}, nil
}

func (g *fakeGarden) Thirsty(context.Context) ([]*models.GardenPlant, error) {
	return g.thirsty, g.err
}

type fixture struct {
	m      *Machine
	clock  *clock
	rec    *recorder
	store  *memStore
	garden *fakeGarden
}

func newFixture(t *testing.T, preset *models.Preset) *fixture {
	t.Helper()

	f := &fixture{
		clock:  &clock{now: time.Now()},
		rec:    &recorder{},
		store:  newMemStore(),
		garden: &fakeGarden{},
	}

	m, err := New(preset, Deps{
		Store:     f.store,
		Notifier:  f.rec,
		Player:    f.rec,
		FocusMode: f.rec,
		Haptics:   f.rec,
		Garden:    f.garden,
		Now:       f.clock.Now,
		Sounds: Sounds{
			Start:           "bell",
			PhaseComplete:   "phase_complete",
			SessionComplete: "session_complete",
		},
	})
	require.NoError(t, err)

	f.m = m

	return f
}

func (f *fixture) tick() Outcome {
	f.clock.now = f.clock.now.Add(Tick)
	return f.m.Tick(context.Background())
}

// runPhase ticks until the phase changes and returns the outcome of the
// final tick along with the number of ticks taken.
func (f *fixture) runPhase(t *testing.T) (Outcome, int) {
	t.Helper()

	for n := 1; n <= 24*60*60; n++ {
		out := f.tick()
		if out.Transition != nil {
			return out, n
		}
	}

	t.Fatal("phase never ended")

	return Outcome{}, 0
}

func pomodoro() *models.Preset {
	return models.DefaultPresets()[0]
}

func quickFocus() *models.Preset {
	return models.DefaultPresets()[1]
}

func tiny(rounds int) *models.Preset {
	return &models.Preset{
		Name:       "Tiny",
		Work:       3 * time.Second,
		ShortBreak: time.Second,
		LongBreak:  2 * time.Second,
		Rounds:     rounds,
	}
}

func TestNew(t *testing.T) {
	_, err := New(nil, Deps{Store: newMemStore()})
	assert.ErrorIs(t, err, errNoPreset)

	bad := tiny(0)
	_, err = New(bad, Deps{Store: newMemStore()})
	assert.ErrorIs(t, err, models.ErrInvalidRounds)

	_, err = New(tiny(1), Deps{})
	assert.ErrorIs(t, err, errNoStore)

	m, err := New(pomodoro(), Deps{Store: newMemStore()})
	require.NoError(t, err)

	s := m.State()
	assert.Equal(t, models.Work, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, 4, s.TotalRounds)
	assert.Equal(t, 1500*time.Second, s.Remaining)
	assert.False(t, s.Running)
}

func TestPomodoroCycle(t *testing.T) {
	f := newFixture(t, pomodoro())
	ctx := context.Background()

	out := f.m.Start(ctx)
	require.True(t, out.Applied)
	assert.False(t, out.Degraded())
	assert.Equal(t, []string{"enable"}, f.rec.focus)
	assert.Equal(t, []string{"bell"}, f.rec.sounds)

	type step struct {
		to    models.Phase
		round int
		ticks int
		next  time.Duration
	}

	want := []step{
		{models.ShortBreak, 1, 1500, 300 * time.Second},
		{models.Work, 2, 300, 1500 * time.Second},
		{models.ShortBreak, 2, 1500, 300 * time.Second},
		{models.Work, 3, 300, 1500 * time.Second},
		{models.ShortBreak, 3, 1500, 300 * time.Second},
		{models.Work, 4, 300, 1500 * time.Second},
		{models.LongBreak, 4, 1500, 900 * time.Second},
	}

	total := 0

	for i, w := range want {
		out, n := f.runPhase(t)
		total += n

		assert.Equal(t, w.ticks, n, "step %d", i)
		assert.Equal(t, w.to, out.Transition.To, "step %d", i)
		assert.Equal(t, w.round, out.Transition.Round, "step %d", i)
		assert.False(t, out.Completed, "step %d", i)

		s := f.m.State()
		assert.Equal(t, w.next, s.Remaining, "step %d", i)
		assert.True(t, s.Running)

		stored := f.store.only(t)
		assert.Equal(t, w.to, stored.Phase, "step %d", i)
		assert.Equal(t, w.round, stored.Rounds, "step %d", i)
		assert.False(t, stored.Ended())
	}

	out, n := f.runPhase(t)
	total += n

	assert.Equal(t, 900, n)
	assert.True(t, out.Completed)
	assert.Equal(t, models.LongBreak, out.Transition.From)
	assert.Equal(t, 5, out.Transition.Round)
	assert.Equal(t, 7800, total)

	s := f.m.State()
	assert.False(t, s.Running)
	assert.True(t, s.Finished())
	assert.Equal(t, 5, s.Round)

	stored := f.store.only(t)
	assert.True(t, stored.Completed)
	assert.Equal(t, 4, stored.Rounds)
	assert.Equal(t, 7800*time.Second, stored.Duration)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, stored.CompletedAt.Equal(f.clock.now))

	assert.Equal(t, 1, f.garden.rewards)
	assert.Contains(t, f.rec.titles, "First Focus!")
	assert.Contains(t, f.rec.titles, "Deep Work!")
	assert.Contains(t, f.rec.titles, "Session Complete!")
	assert.Equal(t, "session_complete", f.rec.sounds[len(f.rec.sounds)-1])
	assert.Equal(t, []string{"enable", "disable"}, f.rec.focus)

	// a tick after completion does nothing
	assert.False(t, f.tick().Applied)
}

func TestPhaseCompleteNotification(t *testing.T) {
	f := newFixture(t, tiny(2))

	f.m.Start(context.Background())
	f.runPhase(t)

	assert.Equal(t, "Phase Complete", f.rec.titles[len(f.rec.titles)-1])
	assert.Equal(t, "Your work phase is complete!", f.rec.bodies[len(f.rec.bodies)-1])
	assert.Equal(t, []string{"bell", "phase_complete"}, f.rec.sounds)
	assert.Equal(t, 2, f.rec.pulses)
}

func TestLongBreakEveryFourthRound(t *testing.T) {
	f := newFixture(t, quickFocus())
	ctx := context.Background()

	f.m.Start(ctx)

	var breaks []Transition

	for skips := 0; skips < 100; skips++ {
		out := f.m.Skip(ctx)
		require.True(t, out.Applied)
		require.NotNil(t, out.Transition)

		if out.Transition.To != models.Work {
			breaks = append(breaks, *out.Transition)
		}

		if out.Completed {
			break
		}
	}

	require.Len(t, breaks, 6)

	for i, b := range breaks {
		want := models.ShortBreak
		if b.Round == 4 {
			want = models.LongBreak
		}

		assert.Equal(t, i+1, b.Round)
		assert.Equal(t, want, b.To, "round %d", b.Round)
	}

	assert.Equal(t, 7, f.m.State().Round)
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t, pomodoro())
	ctx := context.Background()

	f.m.Start(ctx)

	for range 10 {
		f.tick()
	}

	out := f.m.Pause(ctx)
	require.True(t, out.Applied)
	assert.Equal(t, models.Paused, f.store.only(t).Phase)

	before := f.m.State().Remaining
	assert.Equal(t, 1490*time.Second, before)

	assert.False(t, f.tick().Applied)
	assert.False(t, f.m.Pause(ctx).Applied)
	assert.Equal(t, before, f.m.State().Remaining)
	assert.True(t, f.m.State().Paused)

	out = f.m.Resume(ctx)
	require.True(t, out.Applied)
	assert.Equal(t, models.Work, f.store.only(t).Phase)
	assert.False(t, f.m.State().Paused)

	f.tick()
	assert.Equal(t, before-Tick, f.m.State().Remaining)
}

func TestSkipWhilePausedKeepsPausedPhase(t *testing.T) {
	f := newFixture(t, tiny(2))
	ctx := context.Background()

	f.m.Start(ctx)
	f.m.Pause(ctx)

	out := f.m.Skip(ctx)
	require.True(t, out.Applied)

	s := f.m.State()
	assert.Equal(t, models.ShortBreak, s.Phase)
	assert.True(t, s.Paused)
	assert.Equal(t, models.Paused, f.store.only(t).Phase)

	f.m.Resume(ctx)
	assert.Equal(t, models.ShortBreak, f.store.only(t).Phase)
}

func TestStop(t *testing.T) {
	f := newFixture(t, pomodoro())
	ctx := context.Background()

	f.m.Start(ctx)

	for range 100 {
		f.tick()
	}

	out := f.m.Stop(ctx)
	require.True(t, out.Applied)
	assert.False(t, out.Completed)

	stored := f.store.only(t)
	assert.False(t, stored.Completed)
	assert.Equal(t, 100*time.Second, stored.Duration)
	assert.Equal(t, models.Work, stored.Phase)
	require.NotNil(t, stored.CompletedAt)

	s := f.m.State()
	assert.False(t, s.Running)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, 1500*time.Second, s.Remaining)
	assert.Empty(t, s.SessionID)
	assert.Equal(t, []string{"enable", "disable"}, f.rec.focus)
	assert.Equal(t, 1, f.rec.stopped)
	assert.Zero(t, f.garden.rewards)
}

func TestStopKeepsRound(t *testing.T) {
	f := newFixture(t, tiny(3))
	ctx := context.Background()

	f.m.Start(ctx)
	f.runPhase(t)
	f.runPhase(t)
	f.tick()
	f.m.Stop(ctx)

	s := f.m.State()
	assert.Equal(t, 2, s.Round)
	assert.Equal(t, models.Work, s.Phase)
	assert.Equal(t, 3*time.Second, s.Remaining)

	f.m.Start(ctx)
	assert.Len(t, f.store.sessions, 2)
	assert.Equal(t, 2, f.m.State().Round)
}

func TestSkipToCompletionGivesNoRewards(t *testing.T) {
	f := newFixture(t, tiny(1))
	ctx := context.Background()

	f.m.Start(ctx)

	out := f.m.Skip(ctx)
	assert.False(t, out.Completed)
	assert.Equal(t, models.ShortBreak, out.Transition.To)

	out = f.m.Skip(ctx)
	assert.True(t, out.Completed)

	stored := f.store.only(t)
	assert.True(t, stored.Completed)
	assert.Equal(t, 1, stored.Rounds)

	assert.Zero(t, f.garden.rewards)
	assert.NotContains(t, f.rec.titles, "Session Complete!")
	assert.NotContains(t, f.rec.titles, "First Focus!")
	assert.NotContains(t, f.rec.titles, "Phase Complete")
	assert.Equal(t, []string{"bell"}, f.rec.sounds)
	assert.Equal(t, []string{"enable", "disable"}, f.rec.focus)
}

func TestFailingEffectsDoNotBlockTransitions(t *testing.T) {
	f := newFixture(t, tiny(1))
	ctx := context.Background()

	f.rec.err = errBoom
	f.store.err = errBoom
	f.garden.err = errBoom

	out := f.m.Start(ctx)
	require.True(t, out.Applied)
	assert.True(t, out.Degraded())
	assert.True(t, f.m.State().Running)

	failed := func(out Outcome) []Effect {
		var effects []Effect
		for _, e := range out.Failures {
			assert.ErrorIs(t, e, errBoom)
			effects = append(effects, e.Effect)
		}

		return effects
	}

	effects := failed(out)
	for _, want := range []Effect{
		EffectPersist,
		EffectFocusMode,
		EffectNotify,
		EffectSound,
		EffectGarden,
		EffectHaptic,
	} {
		assert.Contains(t, effects, want)
	}

	out, _ = f.runPhase(t)
	assert.Equal(t, models.ShortBreak, out.Transition.To)
	assert.True(t, out.Degraded())

	out, _ = f.runPhase(t)
	assert.True(t, out.Completed)
	assert.False(t, f.m.State().Running)
	assert.True(t, slices.Contains(failed(out), EffectStats))
}

func TestStartAfterCompletionResets(t *testing.T) {
	f := newFixture(t, tiny(1))
	ctx := context.Background()

	f.m.Start(ctx)
	f.runPhase(t)
	out, _ := f.runPhase(t)
	require.True(t, out.Completed)
	require.True(t, f.m.State().Finished())

	out = f.m.Start(ctx)
	require.True(t, out.Applied)

	s := f.m.State()
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, models.Work, s.Phase)
	assert.Equal(t, 3*time.Second, s.Remaining)
	assert.True(t, s.Running)
	assert.Len(t, f.store.sessions, 2)
}

func TestInvalidOperationsAreIgnored(t *testing.T) {
	f := newFixture(t, tiny(2))
	ctx := context.Background()

	for _, out := range []Outcome{
		f.m.Pause(ctx),
		f.m.Resume(ctx),
		f.m.Stop(ctx),
		f.m.Skip(ctx),
		f.m.Tick(ctx),
		f.m.AddTime(time.Minute),
	} {
		assert.False(t, out.Applied, out.Op)
	}

	f.m.Start(ctx)

	assert.False(t, f.m.Start(ctx).Applied)
	assert.False(t, f.m.Resume(ctx).Applied)
	assert.False(t, f.m.AddTime(0).Applied)
	assert.Len(t, f.store.sessions, 1)
}

func TestAddTime(t *testing.T) {
	f := newFixture(t, pomodoro())
	ctx := context.Background()

	f.m.Start(ctx)
	f.tick()

	out := f.m.AddTime(5 * time.Minute)
	require.True(t, out.Applied)
	assert.Equal(t, 1799*time.Second, f.m.State().Remaining)

	f.m.Pause(ctx)
	assert.True(t, f.m.AddTime(time.Minute).Applied)
	assert.Equal(t, 1859*time.Second, f.m.State().Remaining)
}

func TestSetPresetAndTask(t *testing.T) {
	f := newFixture(t, pomodoro())
	ctx := context.Background()

	task := models.NewTask("Write report")

	require.NoError(t, f.m.SelectTask(task))
	require.NoError(t, f.m.SetPreset(quickFocus()))

	s := f.m.State()
	assert.Equal(t, models.QuickFocusPreset, s.PresetName)
	assert.Equal(t, 900*time.Second, s.Remaining)
	assert.Equal(t, 6, s.TotalRounds)

	f.m.Start(ctx)

	stored := f.store.only(t)
	assert.True(t, stored.HasTask(task.ID))
	assert.Equal(t, models.QuickFocusPreset, stored.PresetName)

	assert.ErrorIs(t, f.m.SetPreset(pomodoro()), errRunning)
	assert.ErrorIs(t, f.m.SelectTask(nil), errRunning)
	assert.ErrorIs(t, f.m.SetPreset(tiny(0)), errRunning)

	f.m.Stop(ctx)

	assert.ErrorIs(t, f.m.SetPreset(tiny(0)), models.ErrInvalidRounds)
	assert.ErrorIs(t, f.m.SetPreset(nil), errNoPreset)
	require.NoError(t, f.m.SelectTask(nil))
	assert.Nil(t, f.m.State().Task)
}

func TestThirstyPlantReminder(t *testing.T) {
	f := newFixture(t, pomodoro())

	f.garden.thirsty = []*models.GardenPlant{
		{ID: "a", PlantType: "glow-fern", WaterLevel: 10},
	}

	f.m.Start(context.Background())

	assert.Contains(t, f.rec.titles, "Plant Needs Water!")
	assert.Contains(t, f.rec.bodies, "Your Glow Fern is thirsty. Give it some water!")
}
