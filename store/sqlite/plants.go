package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ayoisaiah/lumen/internal/models"
)

const plantColumns = `id, name, plant_type, color, growth_level, water_level,
	water_count, water_needed, created_at, last_watered`

func scanPlant(row scanner) (*models.GardenPlant, error) {
	var (
		p           models.GardenPlant
		createdAt   string
		lastWatered sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.PlantType,
		&p.Color,
		&p.GrowthLevel,
		&p.WaterLevel,
		&p.WaterCount,
		&p.WaterNeeded,
		&createdAt,
		&lastWatered,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	p.LastWatered, err = parseNullTime(lastWatered)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreatePlant(ctx context.Context, plant *models.GardenPlant) error {
	if err := plant.Validate(); err != nil {
		return err
	}

	plant.Clamp()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO garden_plants (`+plantColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plant.ID,
		plant.Name,
		plant.PlantType,
		plant.Color,
		plant.GrowthLevel,
		plant.WaterLevel,
		plant.WaterCount,
		plant.WaterNeeded,
		formatTime(plant.CreatedAt),
		nullTime(plant.LastWatered),
	)
	if err != nil {
		return fmt.Errorf("insert plant: %w", err)
	}

	return nil
}

func (s *Store) UpdatePlant(ctx context.Context, plant *models.GardenPlant) error {
	if err := plant.Validate(); err != nil {
		return err
	}

	plant.Clamp()

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE garden_plants SET name = ?, plant_type = ?, color = ?,
		growth_level = ?, water_level = ?, water_count = ?, water_needed = ?,
		last_watered = ?
		WHERE id = ?`,
		plant.Name,
		plant.PlantType,
		plant.Color,
		plant.GrowthLevel,
		plant.WaterLevel,
		plant.WaterCount,
		plant.WaterNeeded,
		nullTime(plant.LastWatered),
		plant.ID,
	)
	if err != nil {
		return fmt.Errorf("update plant %s: %w", plant.ID, err)
	}

	return checkAffected(res)
}

func (s *Store) GetPlant(ctx context.Context, id string) (*models.GardenPlant, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+plantColumns+` FROM garden_plants WHERE id = ?`,
		id,
	)

	p, err := scanPlant(row)
	if err != nil {
		return nil, notFound(err)
	}

	return p, nil
}

func (s *Store) ListPlants(ctx context.Context) ([]*models.GardenPlant, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+plantColumns+` FROM garden_plants ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list plants: %w", err)
	}
	defer rows.Close()

	var plants []*models.GardenPlant

	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}

		plants = append(plants, p)
	}

	return plants, rows.Err()
}

func (s *Store) DeletePlant(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM garden_plants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plant %s: %w", id, err)
	}

	return checkAffected(res)
}
