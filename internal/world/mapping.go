package world

import (
	"github.com/annel0/voxel-light/internal/logging"
)

// GlobalMapping сводит локальные (на блок) имена нод в одно стабильное
// числовое пространство id на время сессии. Первое увиденное имя
// получает очередной свободный id начиная с 0; id никогда не
// переиспользуются и не сохраняются между запусками.
//
// Таблица не синхронизирована внутренне: при использовании из
// нескольких горутин синхронизацию обеспечивает вызывающий.
// Передается явно по ссылке, глобального синглтона нет.
type GlobalMapping struct {
	mapping map[string]uint16
	lastID  uint16
}

// NewGlobalMapping создает пустую таблицу имён сессии
func NewGlobalMapping() *GlobalMapping {
	return &GlobalMapping{
		mapping: make(map[string]uint16),
	}
}

// GetOrInsertID возвращает глобальный id имени, назначая новый при
// первой встрече. Для одного имени всегда возвращается один и тот же id.
//
// По соглашению имя нулевой ноды (обычно "air") должно быть
// интернировано первым и получить id 0 - это контракт вызывающего.
func (g *GlobalMapping) GetOrInsertID(name string) uint16 {
	if id, ok := g.mapping[name]; ok {
		return id
	}

	id := g.lastID
	g.mapping[name] = id
	g.lastID++

	logging.Debug("глобальный id %d = %s", id, name)

	return id
}

// Len возвращает количество интернированных имён
func (g *GlobalMapping) Len() int {
	return len(g.mapping)
}
