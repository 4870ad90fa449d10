package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

var errUnavailable = errors.New("store unavailable")

// MemoryStore is an in-process ObjectStore used by tests and by local
// development without a MinIO instance. Fail can be toggled to simulate
// an unreachable store so the fallback paths can be exercised.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	Fail    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.Fail {
		return "", errUnavailable
	}
	m.mu.Lock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.objects[key] = cp
	m.mu.Unlock()
	return "memory://" + key, nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.Fail {
		return nil, errUnavailable
	}
	m.mu.RLock()
	data, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if m.Fail {
		return nil, errUnavailable
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var infos []ObjectInfo
	for key, data := range m.objects {
		if strings.HasPrefix(key, prefix) {
			infos = append(infos, ObjectInfo{
				Key:  key,
				URL:  "memory://" + key,
				Size: int64(len(data)),
			})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if m.Fail {
		return errUnavailable
	}
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	if m.Fail {
		return errUnavailable
	}
	return nil
}

// Len reports the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
