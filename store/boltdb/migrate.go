package boltdb

import (
	"encoding/json"
	"strconv"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/timeutil"
)

const schemaVersion = 2

var versionKey = []byte("schema_version")

func readVersion(tx *bolt.Tx) int {
	v := tx.Bucket(metaBucket).Get(versionKey)
	if v == nil {
		return 0
	}

	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}

	return n
}

// migrateSessionKeys rewrites sessions stored under their bare ID (version 1)
// to the chronological start-time key used since version 2.
func migrateSessionKeys(tx *bolt.Tx) error {
	bucket := tx.Bucket(sessionsBucket)
	index := tx.Bucket(sessionIDsBucket)

	type entry struct {
		sess   models.Session
		oldKey []byte
		value  []byte
	}

	var entries []entry

	cur := bucket.Cursor()

	for k, v := cur.First(); k != nil; k, v = cur.Next() {
		var s models.Session

		err := json.Unmarshal(v, &s)
		if err != nil {
			return err
		}

		if string(k) != s.ID {
			continue
		}

		entries = append(entries, entry{
			oldKey: append([]byte(nil), k...),
			value:  append([]byte(nil), v...),
			sess:   s,
		})
	}

	for _, e := range entries {
		newKey := sessionKey(&e.sess)

		if err := bucket.Delete(e.oldKey); err != nil {
			return err
		}

		if err := bucket.Put(newKey, e.value); err != nil {
			return err
		}

		if err := index.Put([]byte(e.sess.ID), newKey); err != nil {
			return err
		}
	}

	return nil
}

func migrate(tx *bolt.Tx) error {
	version := readVersion(tx)
	if version >= schemaVersion {
		return nil
	}

	if version < 2 {
		if err := migrateSessionKeys(tx); err != nil {
			return err
		}
	}

	return tx.Bucket(metaBucket).Put(
		versionKey,
		[]byte(strconv.Itoa(schemaVersion)),
	)
}

// sessionKey orders sessions by start time; the ID suffix keeps keys unique.
func sessionKey(s *models.Session) []byte {
	key := timeutil.ToKey(s.StartedAt)
	key = append(key, '/')

	return append(key, s.ID...)
}
