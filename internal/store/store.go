// Package store keeps a library of saved palettes in Redis.
//
// Each palette is a JSON document under <prefix>:palette:<id>; a sorted set
// <prefix>:palettes indexes ids by creation time.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mbourmaud/shade/internal/palette"
)

// DefaultPrefix namespaces every key written by the store
const DefaultPrefix = "shade"

// ErrNotFound is returned when a palette id is not in the library
var ErrNotFound = errors.New("palette not found")

// Palette is a saved palette with the seed and mode it was generated from
type Palette struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Mode      palette.Mode    `json:"mode"`
	Seed      string          `json:"seed"`
	Colors    []palette.Entry `json:"colors"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store reads and writes palettes through any redis.Cmdable
type Store struct {
	rdb    redis.Cmdable
	prefix string

	now   func() time.Time
	newID func() string
}

// New creates a store. An empty prefix falls back to DefaultPrefix.
func New(rdb redis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		rdb:    rdb,
		prefix: prefix,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Connect opens a client and checks it with PING
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (s *Store) paletteKey(id string) string {
	return s.prefix + ":palette:" + id
}

func (s *Store) indexKey() string {
	return s.prefix + ":palettes"
}

// Save stores p, assigning an id and creation time when missing
func (s *Store) Save(ctx context.Context, p Palette) (Palette, error) {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC().Truncate(time.Second)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to marshal palette: %w", err)
	}

	// document and index entry are written in one MULTI/EXEC
	z := redis.Z{Score: float64(p.CreatedAt.Unix()), Member: p.ID}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.paletteKey(p.ID), string(data), 0)
		pipe.ZAdd(ctx, s.indexKey(), z)
		return nil
	})
	if err != nil {
		return Palette{}, fmt.Errorf("failed to save palette: %w", err)
	}

	return p, nil
}

// Get loads a palette by id
func (s *Store) Get(ctx context.Context, id string) (Palette, error) {
	data, err := s.rdb.Get(ctx, s.paletteKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return Palette{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Palette{}, fmt.Errorf("failed to load palette: %w", err)
	}

	var p Palette
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette %s: %w", id, err)
	}
	return p, nil
}

// List returns up to limit palettes, newest first. Index entries whose
// document has disappeared are skipped.
func (s *Store) List(ctx context.Context, limit int) ([]Palette, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := s.rdb.ZRevRange(ctx, s.indexKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read palette index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.paletteKey(id)
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load palettes: %w", err)
	}

	palettes := make([]Palette, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var p Palette
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("failed to parse palette %s: %w", ids[i], err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// Delete removes a palette and its index entry
func (s *Store) Delete(ctx context.Context, id string) error {
	n, err := s.rdb.Del(ctx, s.paletteKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	if err := s.rdb.ZRem(ctx, s.indexKey(), id).Err(); err != nil {
		return fmt.Errorf("failed to unindex palette: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
