package frontend

// TokenKey ключ, под которым клиент хранит токен доступа.
const TokenKey = "accessToken"

// Storage клиентское key/value хранилище (аналог localStorage браузера).
type Storage interface {
	// GetItem возвращает значение и признак наличия ключа.
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// HasToken сообщает, есть ли в хранилище непустой токен.
func HasToken(store Storage) bool {
	if store == nil {
		return false
	}
	v, ok := store.GetItem(TokenKey)
	return ok && v != ""
}

// MemoryStorage хранилище в памяти для тестов.
type MemoryStorage map[string]string

func (m MemoryStorage) GetItem(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStorage) SetItem(key, value string) error {
	m[key] = value
	return nil
}

func (m MemoryStorage) RemoveItem(key string) error {
	delete(m, key)
	return nil
}
