package world

import (
	"errors"
	"fmt"
)

// Ошибки ядра карты. Каждая операция возвращает ошибку, которую
// вызывающий обязан проверить: повторов и частичных результатов нет.
var (
	// ErrBlockNotFound возвращается бэкендом, если по заданным
	// координатам нет сохраненного блока.
	ErrBlockNotFound = errors.New("блок не найден")

	// ErrInvalidUTF8 возвращается декодером, если имя в таблице имён
	// блока содержит некорректные UTF-8 байты.
	ErrInvalidUTF8 = errors.New("некорректная UTF-8 строка в таблице имён")
)

// UnsupportedVersionError возвращается декодером для блоков, записанных
// в формате старше минимально поддерживаемой версии.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("неподдерживаемая версия блока: %d", e.Version)
}

// UnexpectedFormatError возвращается парсером world.mt для строки,
// не соответствующей формату "ключ = значение".
type UnexpectedFormatError struct {
	Line string
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("неожиданный формат строки: %q", e.Line)
}
