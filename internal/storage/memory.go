package storage

import (
	"context"

	"github.com/annel0/voxel-light/internal/vec"
	"github.com/annel0/voxel-light/internal/world"
)

// MemoryBackend реализует world.MapBackend в памяти.
// Используется в тестах и утилитах вместо настоящей базы.
type MemoryBackend struct {
	blocks map[vec.Vec3][]byte
}

// NewMemoryBackend создает пустой in-memory бэкенд
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		blocks: make(map[vec.Vec3][]byte),
	}
}

// Name возвращает имя бэкенда
func (b *MemoryBackend) Name() string { return "memory" }

// Put кладет сырые байты блока по координатам
func (b *MemoryBackend) Put(pos vec.Vec3, data []byte) {
	b.blocks[pos] = data
}

// GetBlockData возвращает сырые байты блока по координатам
func (b *MemoryBackend) GetBlockData(ctx context.Context, pos vec.Vec3) ([]byte, error) {
	data, ok := b.blocks[pos]
	if !ok {
		return nil, world.ErrBlockNotFound
	}
	return data, nil
}
