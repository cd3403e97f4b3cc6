package boltdb

import (
	"bytes"
	"context"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/timeutil"
	"github.com/ayoisaiah/lumen/store"
)

func (c *Client) CreateSession(_ context.Context, sess *models.Session) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return putSession(tx, sess)
	})
}

// UpdateSession overwrites an existing session. The start time may change,
// so the old chronological key is looked up through the ID index.
func (c *Client) UpdateSession(_ context.Context, sess *models.Session) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		oldKey := tx.Bucket(sessionIDsBucket).Get([]byte(sess.ID))
		if oldKey == nil {
			return store.ErrNotFound
		}

		if !bytes.Equal(oldKey, sessionKey(sess)) {
			err := tx.Bucket(sessionsBucket).Delete(oldKey)
			if err != nil {
				return err
			}
		}

		return putSession(tx, sess)
	})
}

func putSession(tx *bolt.Tx, sess *models.Session) error {
	key := sessionKey(sess)

	err := putJSON(tx.Bucket(sessionsBucket), key, sess)
	if err != nil {
		return err
	}

	return tx.Bucket(sessionIDsBucket).Put([]byte(sess.ID), key)
}

func (c *Client) GetSession(_ context.Context, id string) (*models.Session, error) {
	var sess models.Session

	err := c.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(sessionIDsBucket).Get([]byte(id))
		if key == nil {
			return store.ErrNotFound
		}

		return getJSON(tx.Bucket(sessionsBucket), key, &sess)
	})
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

// ListSessions walks the sessions bucket backwards from the upper bound so
// results come out newest first without sorting.
func (c *Client) ListSessions(
	_ context.Context,
	filter store.SessionFilter,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionsBucket).Cursor()

		var k, v []byte

		if filter.Until.IsZero() {
			k, v = cur.Last()
		} else {
			// keys share the time prefix, so seeking just past the bound
			// and stepping back lands on the last key inside it
			upper := append(timeutil.ToKey(filter.Until), '0')

			k, v = cur.Seek(upper)
			if k == nil {
				k, v = cur.Last()
			} else {
				k, v = cur.Prev()
			}
		}

		var lower []byte
		if !filter.Since.IsZero() {
			lower = timeutil.ToKey(filter.Since)
		}

		for ; k != nil; k, v = cur.Prev() {
			if lower != nil && bytes.Compare(k, lower) < 0 {
				break
			}

			var sess models.Session

			err := json.Unmarshal(v, &sess)
			if err != nil {
				return err
			}

			if !filter.Match(&sess) {
				continue
			}

			sessions = append(sessions, &sess)
		}

		return nil
	})

	return sessions, err
}

func (c *Client) DeleteSessions(_ context.Context, ids ...string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(sessionIDsBucket)
		sessions := tx.Bucket(sessionsBucket)

		for _, id := range ids {
			key := index.Get([]byte(id))
			if key == nil {
				continue
			}

			if err := sessions.Delete(key); err != nil {
				return err
			}

			if err := index.Delete([]byte(id)); err != nil {
				return err
			}
		}

		return nil
	})
}
