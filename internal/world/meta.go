package world

import (
	"fmt"
	"os"
	"strings"
)

// WorldMeta представляет метаданные мира из файла world.mt:
// текстовые пары "ключ = значение", по одной на строку.
// Ядру из него нужен ключ backend (и pgsql_connection для PostgreSQL);
// проверку допустимых значений выполняет встраивающее приложение.
type WorldMeta struct {
	values map[string]string
}

// OpenWorldMeta читает и разбирает файл метаданных мира
func OpenWorldMeta(path string) (*WorldMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
	}

	return ParseWorldMeta(string(data))
}

// ParseWorldMeta разбирает содержимое файла метаданных.
// Пустые строки пропускаются, ключ и значение обрезаются по пробелам.
// Непустая строка без "=" - ошибка формата с текстом этой строки.
func ParseWorldMeta(data string) (*WorldMeta, error) {
	values := make(map[string]string)

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, &UnexpectedFormatError{Line: line}
		}

		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return &WorldMeta{values: values}, nil
}

// GetStr возвращает значение по ключу.
// Второе значение false, если ключа в файле не было.
func (m *WorldMeta) GetStr(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}
