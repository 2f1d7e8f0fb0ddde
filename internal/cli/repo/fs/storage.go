package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Corexus/internal/frontend"
)

// Storage файловое локальное хранилище CLI: один файл на ключ в каталоге dir.
type Storage struct {
	dir string
}

var _ frontend.Storage = (*Storage)(nil)

// NewStorage создаёт хранилище в каталоге dir. Каталог создаётся при первой записи.
func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// GetItem читает значение. Отсутствующий или нечитаемый файл означает отсутствие ключа.
func (s *Storage) GetItem(key string) (string, bool) {
	p, err := s.path(key)
	if err != nil {
		return "", false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", false
	}
	// обрезаем завершающие переводы строки/пробелы
	return strings.TrimRight(string(b), " \t\r\n"), true
}

// SetItem сохраняет значение в файл с правами 0600.
func (s *Storage) SetItem(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// RemoveItem удаляет файл ключа. Отсутствие файла не ошибка.
func (s *Storage) RemoveItem(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
