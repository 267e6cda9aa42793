package world

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/annel0/voxel-light/internal/vec"
	"github.com/klauspost/compress/zstd"
)

const (
	// BlockSize - длина ребра блока в нодах
	BlockSize = 16

	// Volume - количество нод в одном блоке (16^3)
	Volume = BlockSize * BlockSize * BlockSize

	// MinSupportedVersion - минимальная поддерживаемая версия формата
	// блока. Начиная с неё тело блока сжато Zstandard.
	MinSupportedVersion = 29
)

// Block представляет декодированный блок мира 16x16x16.
// Хранит четыре плана нод-данных по Volume байт каждый (старший байт id,
// младший байт id, param1, param2) и локальную таблицу имён id -> имя.
// Block создается только целиком: частично декодированных блоков не бывает.
type Block struct {
	nodeData []byte // ровно 4*Volume байт
	mappings map[uint16]string
}

// Node представляет состояние одной ноды: 16-битный id и два байтовых
// параметра. Создается заново при каждом запросе.
type Node struct {
	ID     uint16
	Param1 uint8
	Param2 uint8
}

// ParseBlock декодирует сырые байты блока, полученные от бэкенда.
//
// Формат: байт версии, далее Zstandard-поток, внутри которого
// последовательно лежат служебные поля, таблица имён и четыре плана
// нод-данных. Любая ошибка на любом шаге прерывает декодирование
// целиком.
func ParseBlock(data []byte) (*Block, error) {
	r := bytes.NewReader(data)

	version, err := readU8(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения версии блока: %w", err)
	}
	if version < MinSupportedVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	// Все оставшиеся байты - один Zstandard-поток, распаковываем его
	// в память целиком (потоковой распаковки нет).
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации zstd: %w", err)
	}
	defer dec.Close()

	body, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки блока: %w", err)
	}

	cur := bytes.NewReader(body)

	// Флаги, lighting_complete, timestamp и версия таблицы имён
	// декодеру не нужны, но прочитаны они должны быть успешно.
	if _, err := readU8(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения флагов: %w", err)
	}
	if _, err := readU16(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения lighting_complete: %w", err)
	}
	if _, err := readU32(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения timestamp: %w", err)
	}
	if _, err := readU8(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения версии таблицы имён: %w", err)
	}

	mappingsCount, err := readU16(cur)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения размера таблицы имён: %w", err)
	}

	mappings := make(map[uint16]string, mappingsCount)
	for i := uint16(0); i < mappingsCount; i++ {
		id, err := readU16(cur)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения id в таблице имён: %w", err)
		}
		name, err := readString(cur)
		if err != nil {
			return nil, err
		}
		// Повторный id молча перезаписывает предыдущее имя.
		mappings[id] = name
	}

	// Заявленные content_width и params_width не проверяются:
	// для версий >= 29 раскладка планов фиксирована (2+1+1 байта на ноду).
	if _, err := readU8(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения content_width: %w", err)
	}
	if _, err := readU8(cur); err != nil {
		return nil, fmt.Errorf("ошибка чтения params_width: %w", err)
	}

	nodeData := make([]byte, Volume*4)
	if _, err := io.ReadFull(cur, nodeData); err != nil {
		return nil, fmt.Errorf("ошибка чтения нод-данных: %w", err)
	}

	return &Block{
		nodeData: nodeData,
		mappings: mappings,
	}, nil
}

// GetNode возвращает ноду по локальным координатам внутри блока.
// Каждая компонента обязана лежать в [0, 16): выход за границы - ошибка
// программиста, а не данных, поэтому паника, а не error.
func (b *Block) GetNode(pos vec.Vec3) Node {
	idx := nodeIndex(pos)

	idHi := uint16(b.nodeData[2*idx])
	idLo := uint16(b.nodeData[2*idx+1])
	param1 := b.nodeData[Volume*2+idx]
	param2 := b.nodeData[Volume*3+idx]

	return Node{
		ID:     idHi<<8 | idLo,
		Param1: param1,
		Param2: param2,
	}
}

// GetNameByID возвращает имя ноды по локальному id блока.
// Второе значение false, если id в таблице имён этого блока нет
// (легитимно даже для id 0 - декодер его не выделяет).
func (b *Block) GetNameByID(id uint16) (string, bool) {
	name, ok := b.mappings[id]
	return name, ok
}

// nodeIndex вычисляет плоский индекс ноды в плане
func nodeIndex(pos vec.Vec3) int {
	if pos.X < 0 || pos.X >= BlockSize ||
		pos.Y < 0 || pos.Y >= BlockSize ||
		pos.Z < 0 || pos.Z >= BlockSize {
		panic(fmt.Sprintf("координата ноды вне блока: %+v", pos))
	}

	return pos.Z*BlockSize*BlockSize + pos.Y*BlockSize + pos.X
}

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// readString читает строку с 16-битным префиксом длины.
// Байты обязаны быть корректным UTF-8.
func readString(r io.Reader) (string, error) {
	length, err := readU16(r)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения длины строки: %w", err)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", fmt.Errorf("ошибка чтения строки: %w", err)
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	return string(data), nil
}
