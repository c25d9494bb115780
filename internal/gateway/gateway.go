// ABOUTME: Persistence gateway over a raw Store: whole-collection JSON arrays per key.
// ABOUTME: Reads degrade to empty on failure; writes log and return the error.
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

// Gateway loads and saves the four collections. Every mutation is a full
// load, in-memory change and full save of one collection, done under one
// lock so mutations through the same Gateway do not interleave. Two
// processes sharing a store are not coordinated and the last save wins.
type Gateway struct {
	store storage.Store
	log   *log.Logger
	mu    sync.Mutex
}

// New wraps store and seeds the default reminders if none were ever saved.
// A nil logger discards output.
func New(store storage.Store, logger *log.Logger) *Gateway {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Gateway{store: store, log: logger}
	g.seedReminders()
	return g
}

// Store returns the underlying key-value store.
func (g *Gateway) Store() storage.Store {
	return g.store
}

// seedReminders writes the defaults when the reminders key was never saved.
// It holds the lock so a seed cannot overwrite a concurrent append.
func (g *Gateway) seedReminders() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seedRemindersLocked()
}

func (g *Gateway) seedRemindersLocked() {
	_, err := g.store.Get(storage.KeyReminders)
	if err == nil {
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		g.log.Error("check reminders", "key", storage.KeyReminders, "err", err)
		return
	}
	if err := save(g, storage.KeyReminders, models.DefaultReminders()); err == nil {
		g.log.Debug("seeded default reminders", "count", len(models.DefaultReminders()))
	}
}

// load reads and decodes key. A missing key is an empty collection. Other
// failures are logged and returned alongside an empty collection.
func load[T any](g *Gateway, key string) ([]T, error) {
	raw, err := g.store.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		g.log.Error("load collection", "key", key, "err", err)
		return []T{}, fmt.Errorf("load %s: %w", key, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		g.log.Error("decode collection", "key", key, "err", err)
		return []T{}, fmt.Errorf("decode %s: %w", key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func save[T any](g *Gateway, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		g.log.Error("encode collection", "key", key, "err", err)
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.store.Set(key, raw); err != nil {
		g.log.Error("save collection", "key", key, "err", err)
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadAll returns every record under key. It never fails: a missing key,
// an unreadable store or undecodable data all yield an empty slice.
func LoadAll[T any](g *Gateway, key string) []T {
	records, _ := load[T](g, key)
	return records
}

// SaveAll overwrites key with records. A failure has already been logged
// when it is returned; callers may ignore it and keep their in-memory state.
func SaveAll[T any](g *Gateway, key string, records []T) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return save(g, key, records)
}

// UpsertByKey replaces the first record for which match returns true, or
// appends record when nothing matches. If the stored collection cannot be
// read, nothing is written so unreadable data is not overwritten.
func UpsertByKey[T any](g *Gateway, key string, record T, match func(T) bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := load[T](g, key)
	if err != nil {
		return err
	}
	for i := range records {
		if match(records[i]) {
			records[i] = record
			return save(g, key, records)
		}
	}
	return save(g, key, append(records, record))
}

type rawRecord = map[string]json.RawMessage

func recordID(r rawRecord) string {
	var id string
	if raw, ok := r["id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	return id
}

// PatchByID merges the fields present in patch into the first record whose
// id matches. The merge is shallow: a present field replaces the stored value
// whole, absent fields are untouched. patch is any value that encodes to a
// JSON object. An unknown id is a no-op and writes nothing.
func (g *Gateway) PatchByID(key, id string, patch any) error {
	changes, err := patchFields(patch)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := load[rawRecord](g, key)
	if err != nil {
		return err
	}
	for _, r := range records {
		if r == nil || recordID(r) != id {
			continue
		}
		for k, v := range changes {
			r[k] = v
		}
		return save(g, key, records)
	}
	g.log.Debug("patch target not found", "key", key, "id", id)
	return nil
}

func patchFields(patch any) (rawRecord, error) {
	fields, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}
	var changes rawRecord
	if err := json.Unmarshal(fields, &changes); err != nil {
		return nil, fmt.Errorf("patch must be a JSON object: %w", err)
	}
	return changes, nil
}

func decodeRecord[T any](r rawRecord) (T, error) {
	var v T
	raw, err := json.Marshal(r)
	if err != nil {
		return v, err
	}
	err = json.Unmarshal(raw, &v)
	return v, err
}

// updateByID is PatchByID for patches that depend on the record's current
// state. The read, patchFor and the save all happen under one lock. It
// returns the record as saved, or nil when id is unknown.
func updateByID[T any](g *Gateway, key, id string, patchFor func(T) any) (*T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := load[rawRecord](g, key)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r == nil || recordID(r) != id {
			continue
		}
		current, err := decodeRecord[T](r)
		if err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", key, id, err)
		}
		changes, err := patchFields(patchFor(current))
		if err != nil {
			return nil, err
		}
		for k, v := range changes {
			r[k] = v
		}
		if err := save(g, key, records); err != nil {
			return nil, err
		}
		updated, err := decodeRecord[T](r)
		if err != nil {
			return nil, fmt.Errorf("decode %s %s: %w", key, id, err)
		}
		return &updated, nil
	}
	g.log.Debug("update target not found", "key", key, "id", id)
	return nil, nil
}

// DeleteByID removes every record whose id matches. An unknown id is a
// no-op and writes nothing.
func (g *Gateway) DeleteByID(key, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, err := load[rawRecord](g, key)
	if err != nil {
		return err
	}
	kept := make([]rawRecord, 0, len(records))
	for _, r := range records {
		if recordID(r) != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		g.log.Debug("delete target not found", "key", key, "id", id)
		return nil
	}
	return save(g, key, kept)
}

// ErrAmbiguousID is returned when an id prefix matches more than one record.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

// resolve finds the record whose id equals idOrPrefix, or failing that the
// single record whose id starts with it.
func resolve[T any](records []T, idOrPrefix string, idOf func(T) string, notFound error) (*T, error) {
	if idOrPrefix == "" {
		return nil, notFound
	}
	for i := range records {
		if idOf(records[i]) == idOrPrefix {
			return &records[i], nil
		}
	}

	var match *T
	for i := range records {
		if strings.HasPrefix(idOf(records[i]), idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
			}
			match = &records[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", notFound, idOrPrefix)
	}
	return match, nil
}
