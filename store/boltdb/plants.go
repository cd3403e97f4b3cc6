package boltdb

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

func (c *Client) CreatePlant(_ context.Context, plant *models.GardenPlant) error {
	if err := plant.Validate(); err != nil {
		return err
	}

	plant.Clamp()

	return c.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(plantsBucket), []byte(plant.ID), plant)
	})
}

func (c *Client) UpdatePlant(_ context.Context, plant *models.GardenPlant) error {
	if err := plant.Validate(); err != nil {
		return err
	}

	plant.Clamp()

	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(plantsBucket)

		if b.Get([]byte(plant.ID)) == nil {
			return store.ErrNotFound
		}

		return putJSON(b, []byte(plant.ID), plant)
	})
}

func (c *Client) GetPlant(_ context.Context, id string) (*models.GardenPlant, error) {
	var plant models.GardenPlant

	err := c.db.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket(plantsBucket), []byte(id), &plant)
	})
	if err != nil {
		return nil, err
	}

	return &plant, nil
}

func (c *Client) ListPlants(_ context.Context) ([]*models.GardenPlant, error) {
	var plants []*models.GardenPlant

	err := c.db.View(func(tx *bolt.Tx) error {
		var err error

		plants, err = listJSON[models.GardenPlant](tx.Bucket(plantsBucket))

		return err
	})

	sortNewestFirst(plants, func(p *models.GardenPlant) int64 {
		return p.CreatedAt.UnixNano()
	})

	return plants, err
}

func (c *Client) DeletePlant(_ context.Context, id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(plantsBucket)

		if b.Get([]byte(id)) == nil {
			return store.ErrNotFound
		}

		return b.Delete([]byte(id))
	})
}
