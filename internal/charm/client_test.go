// ABOUTME: Unit tests for the Charm client using an in-process kv double.
// ABOUTME: Covers not-found mapping, read-only guards, and auto-sync.
package charm

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v3"

	"github.com/harperreed/spoons/internal/storage"
)

type fakeKV struct {
	data     map[string][]byte
	readOnly bool
	syncs    int
	resets   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string][]byte{}}
}

func (f *fakeKV) Get(key []byte) ([]byte, error) {
	v, ok := f.data[string(key)]
	if !ok {
		return nil, badger.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(key, value []byte) error {
	f.data[string(key)] = value
	return nil
}

func (f *fakeKV) Delete(key []byte) error {
	delete(f.data, string(key))
	return nil
}

func (f *fakeKV) Keys() ([][]byte, error) {
	var keys [][]byte
	for k := range f.data {
		keys = append(keys, []byte(k))
	}
	return keys, nil
}

func (f *fakeKV) Sync() error      { f.syncs++; return nil }
func (f *fakeKV) Reset() error     { f.resets++; f.data = map[string][]byte{}; return nil }
func (f *fakeKV) Close() error     { return nil }
func (f *fakeKV) IsReadOnly() bool { return f.readOnly }

func TestClientGetMissingKey(t *testing.T) {
	c := newClient(newFakeKV(), DefaultHost)

	_, err := c.Get(storage.KeyTasks)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected storage.ErrNotFound, got %v", err)
	}
}

func TestClientSetSyncs(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake, DefaultHost)

	if err := c.Set(storage.KeyTasks, []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if fake.syncs != 1 {
		t.Errorf("expected 1 sync after write, got %d", fake.syncs)
	}

	got, err := c.Get(storage.KeyTasks)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}

	c.SetAutoSync(false)
	if err := c.Delete(storage.KeyTasks); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fake.syncs != 1 {
		t.Errorf("auto-sync disabled, expected syncs to stay at 1, got %d", fake.syncs)
	}
}

func TestClientReadOnly(t *testing.T) {
	fake := newFakeKV()
	fake.readOnly = true
	c := newClient(fake, DefaultHost)

	if err := c.Set(storage.KeyTasks, []byte("[]")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Set: expected ErrReadOnly, got %v", err)
	}
	if err := c.Delete(storage.KeyTasks); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Delete: expected ErrReadOnly, got %v", err)
	}
	if err := c.Sync(); err != nil {
		t.Errorf("Sync in read-only mode should be a no-op, got %v", err)
	}
	if fake.syncs != 0 {
		t.Errorf("expected no syncs in read-only mode, got %d", fake.syncs)
	}
}

func TestClientKeysSorted(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake, "example.test")
	for _, k := range []string{storage.KeyTasks, storage.KeyCheckIns, storage.KeyReminders} {
		_ = c.Set(k, []byte("[]"))
	}

	keys, err := c.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{storage.KeyCheckIns, storage.KeyReminders, storage.KeyTasks}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if c.Host() != "example.test" {
		t.Errorf("Host() = %q", c.Host())
	}
}

func TestClientReset(t *testing.T) {
	fake := newFakeKV()
	c := newClient(fake, DefaultHost)
	_ = c.Set(storage.KeyTasks, []byte("[]"))

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if fake.resets != 1 {
		t.Errorf("expected 1 reset, got %d", fake.resets)
	}
	if _, err := c.Get(storage.KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected data wiped after reset, got %v", err)
	}
}
