// Package boltdb implements store.DB on top of a bbolt file.
package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/osutil"
	"github.com/ayoisaiah/lumen/store"
)

var (
	tasksBucket      = []byte("tasks")
	sessionsBucket   = []byte("sessions")
	sessionIDsBucket = []byte("session_ids")
	presetsBucket    = []byte("presets")
	plantsBucket     = []byte("plants")
	metaBucket       = []byte("meta")

	buckets = [][]byte{
		tasksBucket,
		sessionsBucket,
		sessionIDsBucket,
		presetsBucket,
		plantsBucket,
		metaBucket,
	}
)

// Client is a BoltDB database client.
type Client struct {
	db *bolt.DB
}

var _ store.DB = (*Client)(nil)

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, store.ErrLocked
		}

		return nil, err
	}

	return db, nil
}

// Open returns a client for the bolt file at dbPath, creating the buckets,
// migrating older layouts and seeding the default presets as needed.
func Open(ctx context.Context, dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Client{db: db}

	err = store.Seed(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}

// Close ends the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

func getJSON(b *bolt.Bucket, key []byte, v any) error {
	data := b.Get(key)
	if data == nil {
		return store.ErrNotFound
	}

	return json.Unmarshal(data, v)
}

func putJSON(b *bolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return b.Put(key, data)
}

// listJSON decodes every value in a bucket.
func listJSON[T any](b *bolt.Bucket) ([]*T, error) {
	var out []*T

	err := b.ForEach(func(_, v []byte) error {
		item := new(T)

		if err := json.Unmarshal(v, item); err != nil {
			return err
		}

		out = append(out, item)

		return nil
	})

	return out, err
}
