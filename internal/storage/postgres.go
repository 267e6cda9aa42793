package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/annel0/voxel-light/internal/vec"
	"github.com/annel0/voxel-light/internal/world"
	_ "github.com/lib/pq"
)

// PostgresBackend реализует world.MapBackend поверх PostgreSQL.
// Таблица blocks: колонки posx, posy, posz и бинарная data.
// Соединение открывается один раз при создании и держится всю сессию;
// TLS не используется, переподключений и таймаутов нет - зависший
// сетевой вызов блокирует вызывающего.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend подключается к базе блоков по строке соединения.
// Параметры:
//
//	dsn - строка подключения libpq (host=... dbname=... user=...)
//
// Возвращает:
//
//	*PostgresBackend - экземпляр бэкенда
//	error - ошибка подключения
func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	// Шифрование транспорта не используется
	if !strings.Contains(dsn, "sslmode=") {
		dsn = strings.TrimSpace(dsn) + " sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к postgres: %w", err)
	}

	// Проверяем соединение сразу, чтобы упасть на старте, а не на
	// первом запросе блока
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось проверить соединение с postgres: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

// Name возвращает имя бэкенда
func (b *PostgresBackend) Name() string { return "postgres" }

// GetBlockData возвращает сырые байты блока по координатам
func (b *PostgresBackend) GetBlockData(ctx context.Context, pos vec.Vec3) ([]byte, error) {
	const query = `
		SELECT data
		FROM blocks
		WHERE posx = $1
		  AND posy = $2
		  AND posz = $3
		LIMIT 1`

	var data []byte
	err := b.db.QueryRowContext(ctx, query, pos.X, pos.Y, pos.Z).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, world.ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к postgres: %w", err)
	}

	return data, nil
}

// Close закрывает соединение с базой
func (b *PostgresBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
