package world

import (
	"context"
	"sync"
	"time"

	"github.com/annel0/voxel-light/internal/vec"
)

// MapBackend определяет интерфейс хранилища блоков мира.
// Реализации (SQLite, PostgreSQL, in-memory) лежат в internal/storage.
type MapBackend interface {
	// Name возвращает имя бэкенда ("sqlite3", "postgres", ...)
	// для логов и метрик.
	Name() string

	// GetBlockData возвращает сырые байты блока по его координатам.
	// Параметры:
	//   ctx - контекст вызова (ядро само таймаутов не ставит)
	//   pos - координаты блока
	// Возвращает:
	//   []byte - сериализованный блок
	//   error - ErrBlockNotFound, если блока нет, либо обернутая
	//           ошибка драйвера
	GetBlockData(ctx context.Context, pos vec.Vec3) ([]byte, error)
}

// Map владеет единственным экземпляром бэкенда и выдает блоки по
// координатам. Доступ к бэкенду сериализован мьютексом: одновременно
// выполняется не более одного запроса, второй вызывающий ждет.
type Map struct {
	mu      sync.Mutex
	backend MapBackend
}

// NewMap создает карту поверх выбранного бэкенда.
// Бэкенд выбирается один раз при старте и далее не меняется.
func NewMap(backend MapBackend) *Map {
	return &Map{backend: backend}
}

// GetBlock загружает и декодирует блок по координатам.
// Ошибки бэкенда и декодера пробрасываются без изменений; частично
// декодированный блок не возвращается никогда.
func (m *Map) GetBlock(ctx context.Context, pos vec.Vec3) (*Block, error) {
	m.mu.Lock()
	data, err := m.backend.GetBlockData(ctx, pos)
	m.mu.Unlock()

	if err != nil {
		blockFetches.WithLabelValues(m.backend.Name(), "error").Inc()
		return nil, err
	}
	blockFetches.WithLabelValues(m.backend.Name(), "ok").Inc()

	start := time.Now()
	block, err := ParseBlock(data)
	if err != nil {
		blockDecodeErrors.Inc()
		return nil, err
	}
	blockDecodeDuration.Observe(time.Since(start).Seconds())

	return block, nil
}
