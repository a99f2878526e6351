package storage

// Memory is a map-backed KV, useful in tests and anywhere durable
// storage is not wanted.
type Memory struct {
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	value, exists := m.data[key]
	if !exists {
		return nil, false, nil
	}
	return value, true, nil
}

func (m *Memory) Set(key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)
	m.data[key] = copied
	return nil
}
