package boltdb

import (
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

func (c *Client) CreateTask(_ context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket(tasksBucket), []byte(task.ID), task)
	})
}

func (c *Client) UpdateTask(_ context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(tasksBucket)

		if b.Get([]byte(task.ID)) == nil {
			return store.ErrNotFound
		}

		return putJSON(b, []byte(task.ID), task)
	})
}

func (c *Client) GetTask(_ context.Context, id string) (*models.Task, error) {
	var task models.Task

	err := c.db.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket(tasksBucket), []byte(id), &task)
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (c *Client) ListTasks(_ context.Context) ([]*models.Task, error) {
	var tasks []*models.Task

	err := c.db.View(func(tx *bolt.Tx) error {
		var err error

		tasks, err = listJSON[models.Task](tx.Bucket(tasksBucket))

		return err
	})

	sortNewestFirst(tasks, func(t *models.Task) int64 {
		return t.CreatedAt.UnixNano()
	})

	return tasks, err
}

// DeleteTask removes a task and clears the task reference of every session
// that pointed at it in the same transaction.
func (c *Client) DeleteTask(_ context.Context, id string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		tasks := tx.Bucket(tasksBucket)

		if tasks.Get([]byte(id)) == nil {
			return store.ErrNotFound
		}

		sessions := tx.Bucket(sessionsBucket)

		type orphan struct {
			key   []byte
			value []byte
		}

		var orphans []orphan

		err := sessions.ForEach(func(k, v []byte) error {
			var s models.Session

			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}

			if !s.HasTask(id) {
				return nil
			}

			s.TaskID = nil

			b, err := json.Marshal(&s)
			if err != nil {
				return err
			}

			orphans = append(orphans, orphan{
				key:   append([]byte(nil), k...),
				value: b,
			})

			return nil
		})
		if err != nil {
			return err
		}

		for _, o := range orphans {
			if err := sessions.Put(o.key, o.value); err != nil {
				return err
			}
		}

		return tasks.Delete([]byte(id))
	})
}
