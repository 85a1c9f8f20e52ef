// Package store keeps named levels in the per-user data directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Faultbox/dungeongen/pkg/dungeon"
	"github.com/quasilyte/gdata"
)

// Archive errors.
var (
	ErrNotFound    = errors.New("level not found")
	ErrInvalidName = errors.New("invalid level name")
)

const (
	indexKey    = "index"
	levelPrefix = "level-"
	maxNameLen  = 64
)

// itemStore is the subset of *gdata.Manager the archive needs.
type itemStore interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
	DeleteItem(key string) error
}

// Entry describes one saved level.
type Entry struct {
	Name    string    `json:"name"`
	Seed    string    `json:"seed"`
	Width   uint32    `json:"width"`
	Height  uint32    `json:"height"`
	Rooms   int       `json:"rooms"`
	SavedAt time.Time `json:"savedAt"`
}

// Archive stores encoded levels under sanitised keys plus a JSON index.
type Archive struct {
	items itemStore
	now   func() time.Time
}

// Open opens the archive for appName.
func Open(appName string) (*Archive, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("opening level archive: %w", err)
	}
	return newArchive(m), nil
}

func newArchive(items itemStore) *Archive {
	return &Archive{items: items, now: time.Now}
}

// levelKey maps a level name to its item key. Names may hold letters,
// digits, '-' and '_'; anything else is rejected rather than rewritten so
// two names never share a key.
func levelKey(name string) (string, error) {
	if name == "" || len(name) > maxNameLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		ok := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_'
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return levelPrefix + strings.ToLower(name), nil
}

// Save stores l under name, replacing any previous level with that name.
// Name, Width, Height, Rooms and SavedAt of meta are filled in from l.
func (a *Archive) Save(name string, l *dungeon.Level, meta Entry) error {
	key, err := levelKey(name)
	if err != nil {
		return err
	}

	if err := a.items.SaveItem(key, l.Encode()); err != nil {
		return fmt.Errorf("saving level %q: %w", name, err)
	}

	index, err := a.loadIndex()
	if err != nil {
		return err
	}
	meta.Name = name
	meta.Width = l.Width()
	meta.Height = l.Height()
	meta.Rooms = len(l.Rooms())
	meta.SavedAt = a.now().UTC()

	index = slices.DeleteFunc(index, func(e Entry) bool { return strings.EqualFold(e.Name, name) })
	index = append(index, meta)
	return a.saveIndex(index)
}

// Load returns the level stored under name.
func (a *Archive) Load(name string) (*dungeon.Level, error) {
	key, err := levelKey(name)
	if err != nil {
		return nil, err
	}

	data, err := a.items.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("loading level %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	l, err := dungeon.ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("decoding level %q: %w", name, err)
	}
	return l, nil
}

// List returns the saved levels sorted by name.
func (a *Archive) List() ([]Entry, error) {
	index, err := a.loadIndex()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(index, func(x, y Entry) int { return strings.Compare(x.Name, y.Name) })
	return index, nil
}

// Delete removes the level stored under name.
func (a *Archive) Delete(name string) error {
	key, err := levelKey(name)
	if err != nil {
		return err
	}

	index, err := a.loadIndex()
	if err != nil {
		return err
	}
	n := len(index)
	index = slices.DeleteFunc(index, func(e Entry) bool { return strings.EqualFold(e.Name, name) })
	if len(index) == n {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if err := a.items.DeleteItem(key); err != nil {
		return fmt.Errorf("deleting level %q: %w", name, err)
	}
	return a.saveIndex(index)
}

func (a *Archive) loadIndex() ([]Entry, error) {
	data, err := a.items.LoadItem(indexKey)
	if err != nil {
		return nil, fmt.Errorf("loading archive index: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var index []Entry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parsing archive index: %w", err)
	}
	return index, nil
}

func (a *Archive) saveIndex(index []Entry) error {
	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encoding archive index: %w", err)
	}
	if err := a.items.SaveItem(indexKey, data); err != nil {
		return fmt.Errorf("saving archive index: %w", err)
	}
	return nil
}
