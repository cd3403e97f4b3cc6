package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

const presetColumns = `id, name, work_seconds, short_break_seconds,
	long_break_seconds, rounds, created_at`

func scanPreset(row scanner) (*models.Preset, error) {
	var (
		p                 models.Preset
		work, short, long int64
		createdAt         string
	)

	err := row.Scan(&p.ID, &p.Name, &work, &short, &long, &p.Rounds, &createdAt)
	if err != nil {
		return nil, err
	}

	p.Work = time.Duration(work) * time.Second
	p.ShortBreak = time.Duration(short) * time.Second
	p.LongBreak = time.Duration(long) * time.Second

	p.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func (s *Store) CreatePreset(ctx context.Context, preset *models.Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO presets (`+presetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		preset.ID,
		preset.Name,
		seconds(preset.Work),
		seconds(preset.ShortBreak),
		seconds(preset.LongBreak),
		preset.Rounds,
		formatTime(preset.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicatePreset.Fmt(preset.Name)
		}

		return fmt.Errorf("insert preset: %w", err)
	}

	return nil
}

func (s *Store) UpdatePreset(ctx context.Context, preset *models.Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE presets SET name = ?, work_seconds = ?, short_break_seconds = ?,
		long_break_seconds = ?, rounds = ?
		WHERE id = ?`,
		preset.Name,
		seconds(preset.Work),
		seconds(preset.ShortBreak),
		seconds(preset.LongBreak),
		preset.Rounds,
		preset.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicatePreset.Fmt(preset.Name)
		}

		return fmt.Errorf("update preset %s: %w", preset.ID, err)
	}

	return checkAffected(res)
}

func (s *Store) GetPresetByName(
	ctx context.Context,
	name string,
) (*models.Preset, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+presetColumns+` FROM presets WHERE name = ?`,
		name,
	)

	p, err := scanPreset(row)
	if err != nil {
		return nil, notFound(err)
	}

	return p, nil
}

// ListPresets returns presets in creation order, ties broken by name.
func (s *Store) ListPresets(ctx context.Context) ([]*models.Preset, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+presetColumns+` FROM presets
		ORDER BY created_at, name COLLATE BINARY`,
	)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*models.Preset

	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}

		presets = append(presets, p)
	}

	return presets, rows.Err()
}

func (s *Store) DeletePreset(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete preset %s: %w", id, err)
	}

	return checkAffected(res)
}
