// Package garden grows plants as a reward for finished focus sessions.
package garden

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

// RewardTypes are the plant types handed out for completed sessions.
var RewardTypes = []string{
	"neon-sprout",
	"glow-fern",
	"crystal-bloom",
	"quantum-vine",
	"stellar-bud",
}

// GardenTypes are plant types a user may plant by hand, in addition to the
// reward types.
var GardenTypes = []string{
	"Flower",
	"Tree",
	"Herb",
	"Succulent",
	"Vegetable",
	"Fruit",
}

const (
	waterStep       = 25
	growOnWater     = 80
	growThreshold   = 60
	growthWaterCost = 20

	// LowWaterLevel is the level under which a plant is considered thirsty.
	LowWaterLevel = 30
)

// Water tops up a plant's water and may advance its growth.
func Water(p *models.GardenPlant, now time.Time) {
	p.WaterLevel = min(models.MaxWaterLevel, p.WaterLevel+waterStep)
	p.WaterCount = min(p.WaterCount+1, p.WaterNeeded)
	p.LastWatered = &now

	if p.WaterLevel >= growOnWater && p.GrowthLevel < models.MaxGrowthLevel {
		p.GrowthLevel++
	}

	p.Clamp()
}

// Grow advances growth by one level when the plant has enough water.
// Growing consumes water. It reports whether the plant grew.
func Grow(p *models.GardenPlant) bool {
	if p.WaterLevel < growThreshold || p.GrowthLevel >= models.MaxGrowthLevel {
		return false
	}

	p.GrowthLevel++
	p.WaterLevel = max(0, p.WaterLevel-growthWaterCost)

	p.Clamp()

	return true
}

// Thirsty reports whether the plant needs watering.
func Thirsty(p *models.GardenPlant) bool {
	return p.WaterLevel < LowWaterLevel
}

// ValidType reports whether t names a known plant type.
func ValidType(t string) bool {
	match := func(s string) bool { return strings.EqualFold(s, t) }

	return slices.ContainsFunc(RewardTypes, match) ||
		slices.ContainsFunc(GardenTypes, match)
}

// DisplayName turns a plant type such as "glow-fern" into "Glow Fern".
func DisplayName(plantType string) string {
	words := strings.Fields(strings.ReplaceAll(plantType, "-", " "))

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

func newPlant(name, plantType, color string, now time.Time) *models.GardenPlant {
	if color == "" {
		color = models.DefaultPlantColor
	}

	return &models.GardenPlant{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		PlantType:   plantType,
		Color:       color,
		GrowthLevel: 0,
		WaterLevel:  models.MaxWaterLevel,
		WaterNeeded: models.DefaultWaterNeeded,
		CreatedAt:   now,
	}
}

// Garden manages persisted plants.
type Garden struct {
	store store.PlantStore
	now   func() time.Time
	pick  func(n int) int
}

// Option configures a Garden.
type Option func(*Garden)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Garden) {
		g.now = now
	}
}

// WithPicker overrides how a reward type is chosen. pick must return a value
// in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(g *Garden) {
		g.pick = pick
	}
}

// New returns a garden backed by s.
func New(s store.PlantStore, opts ...Option) *Garden {
	g := &Garden{
		store: s,
		now:   time.Now,
		pick:  rand.IntN,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Reward plants a random reward type, waters it once and grows it once.
func (g *Garden) Reward(ctx context.Context) (*models.GardenPlant, error) {
	plantType := RewardTypes[g.pick(len(RewardTypes))]
	now := g.now()

	p := newPlant(DisplayName(plantType), plantType, "", now)

	Water(p, now)
	Grow(p)

	if err := g.store.CreatePlant(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Plant adds a plant chosen by the user.
func (g *Garden) Plant(
	ctx context.Context,
	name, plantType, color string,
) (*models.GardenPlant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.ErrEmptyName
	}

	if !ValidType(plantType) {
		return nil, errUnknownPlantType.Fmt(plantType)
	}

	p := newPlant(name, plantType, color, g.now())

	if err := g.store.CreatePlant(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Water waters the plant with the given ID and persists the result.
func (g *Garden) Water(ctx context.Context, id string) (*models.GardenPlant, error) {
	p, err := g.store.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	Water(p, g.now())

	if err := g.store.UpdatePlant(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns every plant, newest first.
func (g *Garden) List(ctx context.Context) ([]*models.GardenPlant, error) {
	return g.store.ListPlants(ctx)
}

// Thirsty returns the plants whose water level is below LowWaterLevel.
func (g *Garden) Thirsty(ctx context.Context) ([]*models.GardenPlant, error) {
	plants, err := g.store.ListPlants(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(plants, func(p *models.GardenPlant) bool {
		return !Thirsty(p)
	}), nil
}
