// ABOUTME: Store interface for raw key-value persistence.
// ABOUTME: Defines the fixed collection keys and the not-found sentinel.
package storage

import "errors"

// Fixed logical keys. Each holds a single JSON array.
const (
	KeyCheckIns         = "@check_ins"
	KeyTasks            = "@tasks"
	KeyReminders        = "@reminders"
	KeyCustomCategories = "@custom_categories"
)

// AllKeys lists every collection key in a stable order.
var AllKeys = []string{KeyCheckIns, KeyTasks, KeyReminders, KeyCustomCategories}

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store defines the raw key-value contract each backend implements.
// Values are opaque bytes; the gateway owns serialization.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// Lifecycle
	Close() error
}
