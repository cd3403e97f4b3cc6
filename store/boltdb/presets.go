package boltdb

import (
	"cmp"
	"context"
	"slices"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

// nameTaken reports whether a preset other than id already uses name.
func nameTaken(b *bolt.Bucket, name, id string) (bool, error) {
	presets, err := listJSON[models.Preset](b)
	if err != nil {
		return false, err
	}

	for _, p := range presets {
		if p.ID != id && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}

	return false, nil
}

func (c *Client) CreatePreset(_ context.Context, preset *models.Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(presetsBucket)

		taken, err := nameTaken(b, preset.Name, preset.ID)
		if err != nil {
			return err
		}

		if taken {
			return store.ErrDuplicatePreset.Fmt(preset.Name)
		}

		return putJSON(b, []byte(preset.ID), preset)
	})
}

func (c *Client) UpdatePreset(_ context.Context, preset *models.Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(presetsBucket)

		if b.Get([]byte(preset.ID)) == nil {
			return store.ErrNotFound
		}

		taken, err := nameTaken(b, preset.Name, preset.ID)
		if err != nil {
			return err
		}

		if taken {
			return store.ErrDuplicatePreset.Fmt(preset.Name)
		}

		return putJSON(b, []byte(preset.ID), preset)
	})
}

func (c *Client) GetPresetByName(
	_ context.Context,
	name string,
) (*models.Preset, error) {
	var found *models.Preset

	err := c.db.View(func(tx *bolt.Tx) error {
		presets, err := listJSON[models.Preset](tx.Bucket(presetsBucket))
		if err != nil {
			return err
		}

		for _, p := range presets {
			if strings.EqualFold(p.Name, name) {
				found = p
				return nil
			}
		}

		return store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// ListPresets returns presets in creation order, ties broken by name.
func (c *Client) ListPresets(_ context.Context) ([]*models.Preset, error) {
	var presets []*models.Preset

	err := c.db.View(func(tx *bolt.Tx) error {
		var err error

		presets, err = listJSON[models.Preset](tx.Bucket(presetsBucket))

		return err
	})

	slices.SortStableFunc(presets, func(a, b *models.Preset) int {
		return cmp.Or(
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.Name, b.Name),
		)
	})

	return presets, err
}

func (c *Client) DeletePreset(_ context.Context, id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(presetsBucket)

		if b.Get([]byte(id)) == nil {
			return store.ErrNotFound
		}

		return b.Delete([]byte(id))
	})
}

// sortNewestFirst orders items by the key returned from ts, descending.
func sortNewestFirst[T any](items []*T, ts func(*T) int64) {
	slices.SortStableFunc(items, func(a, b *T) int {
		return cmp.Compare(ts(b), ts(a))
	})
}
