package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

var ErrNotFound = errors.New("record not found")

// Load returns the collection stored under key. A missing value is seeded,
// a value that does not decode is logged, overwritten with the seed and
// replaced by it. Only storage I/O errors are returned.
func Load[T any](kv KV, key string, seed []T) ([]T, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if ok {
		var items []T
		err := json.Unmarshal([]byte(raw), &items)
		if err == nil {
			if items == nil {
				items = []T{}
			}
			return items, nil
		}
		log.Warnf("Stored value under %s could not be decoded, reseeding: %v", key, err)
	}

	items := slices.Clone(seed)
	if items == nil {
		items = []T{}
	}
	if err := Save(kv, key, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save writes the whole collection under key.
func Save[T any](kv KV, key string, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(key, string(b))
}

// Collection is one persisted entity list. It loads lazily on first use
// and writes the full list back after every mutation. Order is the
// insertion order; updates replace records in place.
type Collection[T any] struct {
	mu     sync.Mutex
	kv     KV
	key    string
	seed   []T
	idOf   func(T) string
	items  []T
	loaded bool
}

func NewCollection[T any](kv KV, key string, seed []T, idOf func(T) string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, seed: seed, idOf: idOf}
}

func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	items, err := Load(c.kv, c.key, c.seed)
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// commit persists next and only then makes it the in-memory state.
func (c *Collection[T]) commit(next []T) error {
	if err := Save(c.kv, c.key, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Flush writes the in-memory list. Before the initial load it does nothing,
// so an empty startup state never overwrites stored data.
func (c *Collection[T]) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return nil
	}
	return Save(c.kv, c.key, c.items)
}

// Snapshot returns a copy of the current list.
func (c *Collection[T]) Snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	return slices.Clone(c.items), nil
}

func (c *Collection[T]) Find(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.ensureLoaded(); err != nil {
		return zero, err
	}
	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return c.items[i], nil
}

func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return err
	}
	next := append(slices.Clone(c.items), item)
	return c.commit(next)
}

// Replace runs fn on the record with the given id and stores its result in
// the same position. An error from fn aborts without touching the list.
func (c *Collection[T]) Replace(id string, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if err := c.ensureLoaded(); err != nil {
		return zero, err
	}
	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	updated, err := fn(c.items[i])
	if err != nil {
		return zero, err
	}
	next := slices.Clone(c.items)
	next[i] = updated
	if err := c.commit(next); err != nil {
		return zero, err
	}
	return updated, nil
}

// Remove deletes the record with the given id. A missing id is a no-op and
// reports false.
func (c *Collection[T]) Remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return false, err
	}
	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(slices.Clone(c.items), i, i+1)
	if err := c.commit(next); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return c.idOf(item) == id })
}
