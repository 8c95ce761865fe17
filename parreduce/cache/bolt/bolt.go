// Package bolt persists reduction results in a bbolt database so that
// cached runs survive a restart.
package bolt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"

	"github.com/tymbaca/parreduce-go/pkg/caller"
	"github.com/tymbaca/parreduce-go/pkg/tracer"
)

var bucketName = []byte("results")

type Cache struct {
	db *bbolt.DB
}

func New(path string) (*Cache, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 30 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("create bolt cache: %w", err)
	}

	return &Cache{
		db: db,
	}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	_, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	var val []byte

	err := c.db.View(func(tx *bbolt.Tx) error {
		buck := tx.Bucket(bucketName)
		if buck == nil {
			return nil
		}

		// bbolt values are only valid inside the transaction
		if data := buck.Get([]byte(key)); data != nil {
			val = bytes.Clone(data)
		}

		return nil
	})
	if err != nil {
		panic(err)
	}

	return val, val != nil
}

func (c *Cache) Put(ctx context.Context, key string, val []byte) {
	_, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	err := c.db.Update(func(tx *bbolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}

		return buck.Put([]byte(key), val)
	})
	if err != nil {
		panic(err)
	}
}

// Close must be called to release the database file.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Destroy closes the database and removes the file.
func (c *Cache) Destroy() error {
	path := c.db.Path()
	_ = c.Close()
	return os.Remove(path)
}
