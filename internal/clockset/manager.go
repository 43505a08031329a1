// Package clockset owns the user's ordered list of displayed time zones and
// keeps it in sync with persistent storage and the view.
package clockset

import (
	"encoding/json"

	"github.com/san-kum/tzclock/internal/zone"
	"go.uber.org/zap"
)

// StorageKey is the store slot holding the serialized clock set.
const StorageKey = "clocks"

// Store is the persistence collaborator.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// SlotRenderer creates and destroys the visual slot of a clock.
type SlotRenderer interface {
	CreateSlot(id, name string)
	DestroySlot(id string)
}

// Manager is the ordered, de-duplicated clock set.
type Manager struct {
	ids   []string
	store Store
	slots SlotRenderer
	log   *zap.Logger
}

// New restores the clock set from store and creates a slot for each entry.
// Unreadable or malformed data falls back to a single local clock.
func New(store Store, slots SlotRenderer, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{store: store, slots: slots, log: log}

	for _, id := range restore(store, log) {
		m.ids = append(m.ids, id)
		m.slots.CreateSlot(id, zone.DisplayName(id))
	}
	if len(m.ids) == 0 {
		m.Add(zone.Local)
	}
	return m
}

// Saved returns the clock set as New would restore it, without creating
// slots or writing to store. An empty or malformed set reads as [local].
func Saved(store Store, log *zap.Logger) []string {
	if log == nil {
		log = zap.NewNop()
	}
	ids := restore(store, log)
	if len(ids) == 0 {
		return []string{zone.Local}
	}
	return ids
}

func restore(store Store, log *zap.Logger) []string {
	raw, ok := store.Get(StorageKey)
	if !ok || raw == "" {
		return nil
	}

	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Debug("discarding unparsable clock set", zap.Error(err))
		return nil
	}

	seen := make(map[string]bool, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		id, ok := e.(string)
		if !ok || seen[id] || !zone.Supported(id) {
			log.Debug("discarding clock set entry", zap.Any("entry", e))
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Add appends id unless it is already present or not in the catalog.
func (m *Manager) Add(id string) bool {
	if m.Contains(id) || !zone.Supported(id) {
		return false
	}
	m.ids = append(m.ids, id)
	m.persist()
	m.slots.CreateSlot(id, zone.DisplayName(id))
	return true
}

// Remove deletes id if present.
func (m *Manager) Remove(id string) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.ids = append(m.ids[:i], m.ids[i+1:]...)
	m.persist()
	m.slots.DestroySlot(id)
	return true
}

// Contains reports whether id is in the set.
func (m *Manager) Contains(id string) bool {
	return m.index(id) >= 0
}

// Len returns the number of clocks.
func (m *Manager) Len() int {
	return len(m.ids)
}

// IDs returns a copy of the set in display order.
func (m *Manager) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)
	return out
}

// AvailableForAdd returns catalog entries not yet in the set, in catalog order.
// An empty result means every zone has been added.
func (m *Manager) AvailableForAdd() []zone.Entry {
	var out []zone.Entry
	for _, e := range zone.Catalog() {
		if !m.Contains(e.ID) {
			out = append(out, e)
		}
	}
	return out
}

func (m *Manager) index(id string) int {
	for i, v := range m.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (m *Manager) persist() {
	data, err := json.Marshal(m.ids)
	if err != nil {
		m.log.Warn("encode clock set", zap.Error(err))
		return
	}
	if err := m.store.Set(StorageKey, string(data)); err != nil {
		m.log.Warn("persist clock set", zap.Error(err))
	}
}
