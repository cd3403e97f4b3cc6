package garden_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lumen/internal/garden"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/testutil"
)

var now = time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestWater(t *testing.T) {
	cases := []struct {
		name       string
		plant      models.GardenPlant
		wantWater  int
		wantGrowth int
		wantCount  int
	}{
		{
			name:       "dry plant gains water without growing",
			plant:      models.GardenPlant{WaterLevel: 10, WaterNeeded: 3},
			wantWater:  35,
			wantGrowth: 0,
			wantCount:  1,
		},
		{
			name:       "crossing the threshold grows",
			plant:      models.GardenPlant{WaterLevel: 60, GrowthLevel: 2, WaterNeeded: 3},
			wantWater:  85,
			wantGrowth: 3,
			wantCount:  1,
		},
		{
			name:       "water is capped",
			plant:      models.GardenPlant{WaterLevel: 95, GrowthLevel: 5, WaterCount: 3, WaterNeeded: 3},
			wantWater:  100,
			wantGrowth: 5,
			wantCount:  3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.plant

			garden.Water(&p, now)

			assert.Equal(t, tc.wantWater, p.WaterLevel)
			assert.Equal(t, tc.wantGrowth, p.GrowthLevel)
			assert.Equal(t, tc.wantCount, p.WaterCount)
			require.NotNil(t, p.LastWatered)
			assert.True(t, now.Equal(*p.LastWatered))
		})
	}
}

func TestGrow(t *testing.T) {
	p := models.GardenPlant{WaterLevel: 59, GrowthLevel: 1}
	assert.False(t, garden.Grow(&p))
	assert.Equal(t, 1, p.GrowthLevel)

	p.WaterLevel = 60
	assert.True(t, garden.Grow(&p))
	assert.Equal(t, 2, p.GrowthLevel)
	assert.Equal(t, 40, p.WaterLevel)

	p = models.GardenPlant{WaterLevel: 100, GrowthLevel: 5}
	assert.False(t, garden.Grow(&p))
	assert.Equal(t, 5, p.GrowthLevel)
}

// Any sequence of watering and growth keeps the levels inside their bounds.
func TestLevelsStayBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		p := models.GardenPlant{
			WaterLevel:  r.IntN(101),
			GrowthLevel: r.IntN(6),
			WaterNeeded: models.DefaultWaterNeeded,
		}

		for range 50 {
			if r.IntN(2) == 0 {
				garden.Water(&p, now)
			} else {
				garden.Grow(&p)
			}

			require.GreaterOrEqual(t, p.WaterLevel, 0)
			require.LessOrEqual(t, p.WaterLevel, models.MaxWaterLevel)
			require.GreaterOrEqual(t, p.GrowthLevel, 0)
			require.LessOrEqual(t, p.GrowthLevel, models.MaxGrowthLevel)
			require.LessOrEqual(t, p.WaterCount, p.WaterNeeded)
		}
	}
}

func TestReward(t *testing.T) {
	ctx := context.Background()

	db := testutil.NewStore(t)

	g := garden.New(
		db,
		garden.WithClock(func() time.Time { return now }),
		garden.WithPicker(func(int) int { return 1 }),
	)

	p, err := g.Reward(ctx)
	require.NoError(t, err)

	assert.Equal(t, "glow-fern", p.PlantType)
	assert.Equal(t, "Glow Fern", p.Name)
	// watered to the cap and grown once, then grown again at a water cost
	assert.Equal(t, 2, p.GrowthLevel)
	assert.Equal(t, 80, p.WaterLevel)
	assert.Equal(t, 1, p.WaterCount)

	plants, err := g.List(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, p.ID, plants[0].ID)
}

func TestPlantAndWater(t *testing.T) {
	ctx := context.Background()

	db := testutil.NewStore(t)

	g := garden.New(db, garden.WithClock(func() time.Time { return now }))

	_, err := g.Plant(ctx, " ", "Herb", "")
	assert.ErrorIs(t, err, models.ErrEmptyName)

	_, err = g.Plant(ctx, "Basil", "cactus-ish", "")
	assert.Error(t, err)

	p, err := g.Plant(ctx, "Basil", "herb", "purple")
	require.NoError(t, err)
	assert.Equal(t, "purple", p.Color)
	assert.Equal(t, models.MaxWaterLevel, p.WaterLevel)

	thirsty, err := g.Thirsty(ctx)
	require.NoError(t, err)
	assert.Empty(t, thirsty)

	p.WaterLevel = 5
	require.NoError(t, db.UpdatePlant(ctx, p))

	thirsty, err = g.Thirsty(ctx)
	require.NoError(t, err)
	require.Len(t, thirsty, 1)

	watered, err := g.Water(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, watered.WaterLevel)
	assert.Equal(t, 1, watered.WaterCount)

	thirsty, err = g.Thirsty(ctx)
	require.NoError(t, err)
	assert.Empty(t, thirsty)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Crystal Bloom", garden.DisplayName("crystal-bloom"))
	assert.Equal(t, "Tree", garden.DisplayName("Tree"))
}
