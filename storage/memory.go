package storage

import (
	"sort"
	"sync"
)

// Memory keeps records in process memory; used for tests and -store=memory runs
type Memory struct {
	mu        sync.RWMutex
	records   map[string][]byte
	failWrite error
	quota     int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

// FailWrites makes every subsequent write return err; nil restores normal writes
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite = err
}

// SetQuota caps the total stored bytes; 0 means unlimited
func (m *Memory) SetQuota(bytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = bytes
}

func (m *Memory) WriteRecord(key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrite != nil {
		return m.failWrite
	}
	if m.quota > 0 {
		used := len(blob)
		for k, v := range m.records {
			if k != key {
				used += len(v)
			}
		}
		if used > m.quota {
			return ErrQuotaExceeded
		}
	}

	m.records[key] = append([]byte(nil), blob...)
	return nil
}

func (m *Memory) ReadRecord(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

func (m *Memory) DeleteRecord(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

func (m *Memory) ListRecords() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) Close() error {
	return nil
}
