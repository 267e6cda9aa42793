package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annel0/voxel-light/internal/vec"
	"github.com/annel0/voxel-light/internal/world"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteBackend реализует world.MapBackend поверх SQLite-файла мира
// (map.sqlite). Таблица blocks: целочисленные колонки x, y, z и
// бинарная data.
type SqliteBackend struct {
	db *sql.DB
}

// NewSqliteBackend открывает базу блоков по пути к файлу.
// Параметры:
//
//	path - путь к map.sqlite внутри каталога мира
//
// Возвращает:
//
//	*SqliteBackend - экземпляр бэкенда
//	error - ошибка открытия базы
func NewSqliteBackend(path string) (*SqliteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть базу sqlite: %w", err)
	}

	// Проверяем, что файл действительно открывается
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось проверить базу sqlite: %w", err)
	}

	return &SqliteBackend{db: db}, nil
}

// Name возвращает имя бэкенда
func (b *SqliteBackend) Name() string { return "sqlite3" }

// GetBlockData возвращает сырые байты блока по координатам.
// Точечный запрос без повторов и без таймаута.
func (b *SqliteBackend) GetBlockData(ctx context.Context, pos vec.Vec3) ([]byte, error) {
	const query = `
		SELECT data
		FROM blocks
		WHERE x = ?
		  AND y = ?
		  AND z = ?
		LIMIT 1`

	var data []byte
	err := b.db.QueryRowContext(ctx, query, pos.X, pos.Y, pos.Z).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, world.ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к sqlite: %w", err)
	}

	return data, nil
}

// Close закрывает базу
func (b *SqliteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
