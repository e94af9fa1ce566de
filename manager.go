package iterman

import (
	"sort"
	"sync"
)

// Manager is a named registry of lists.
// It owns the lists registered into it; callers interact with them through the handle Get returns.
// The zero value is ready to use.
//
// Manager is not a process wide singleton, create one and pass it along to wherever lookups are needed.
type Manager[V any] struct {
	mutex sync.RWMutex
	lists map[string]Iterator[V]
}

// Add registers a list under the given name.
// A name that is already taken is rejected with ErrNameTaken,
// and the previously registered list stays untouched.
func (m *Manager[V]) Add(name string, list Iterator[V]) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.lists == nil {
		m.lists = make(map[string]Iterator[V])
	}
	if _, ok := m.lists[name]; ok {
		return ErrNameTaken.F("%q", name)
	}
	m.lists[name] = list
	return nil
}

// Get returns the list registered under the given name,
// or ErrNotFound when the name was never registered.
//
// The returned handle is the registered list itself, not a copy:
// pulling through it advances the cursor that every other lookup of the same name observes.
// A list has one logical consumer at a time;
// wrap it with WithConcurrentAccess before sharing the handle between goroutines.
func (m *Manager[V]) Get(name string) (Iterator[V], error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	list, ok := m.lists[name]
	if !ok {
		return nil, ErrNotFound.F("%q", name)
	}
	return list, nil
}

// Names returns the registered list names in lexicographic order.
func (m *Manager[V]) Names() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	names := make([]string, 0, len(m.lists))
	for name := range m.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len tells how many lists are registered.
func (m *Manager[V]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.lists)
}
