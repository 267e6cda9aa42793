package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseWorldMeta(t *testing.T) {
	t.Run("Пары с пустыми строками", func(t *testing.T) {
		meta, err := ParseWorldMeta("backend = sqlite3\n\n  \n")
		if err != nil {
			t.Fatalf("Ошибка разбора корректного файла: %v", err)
		}

		value, ok := meta.GetStr("backend")
		if !ok {
			t.Fatal("Ключ backend не найден")
		}
		if value != "sqlite3" {
			t.Errorf("Ожидалось значение sqlite3, получено %q", value)
		}

		if _, ok := meta.GetStr("gameid"); ok {
			t.Error("Найден ключ, которого нет в файле")
		}
	})

	t.Run("Обрезка пробелов с обеих сторон", func(t *testing.T) {
		meta, err := ParseWorldMeta("  gameid\t =  minetest  \nbackend=postgres\n")
		if err != nil {
			t.Fatalf("Ошибка разбора: %v", err)
		}

		if value, _ := meta.GetStr("gameid"); value != "minetest" {
			t.Errorf("Ожидалось minetest, получено %q", value)
		}
		if value, _ := meta.GetStr("backend"); value != "postgres" {
			t.Errorf("Ожидалось postgres, получено %q", value)
		}
	})

	t.Run("Строка без знака равенства", func(t *testing.T) {
		_, err := ParseWorldMeta("backend = sqlite3\nкакая-то строка\n")

		var formatErr *UnexpectedFormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("Ожидалась UnexpectedFormatError, получено %v", err)
		}
		if formatErr.Line != "какая-то строка" {
			t.Errorf("В ошибке ожидался текст строки, получено %q", formatErr.Line)
		}
	})
}

func TestOpenWorldMeta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.mt")

	if err := os.WriteFile(path, []byte("backend = sqlite3\ngameid = minetest\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи тестового файла: %v", err)
	}

	meta, err := OpenWorldMeta(path)
	if err != nil {
		t.Fatalf("Ошибка открытия world.mt: %v", err)
	}

	if value, _ := meta.GetStr("backend"); value != "sqlite3" {
		t.Errorf("Ожидалось sqlite3, получено %q", value)
	}

	// Отсутствующий файл - ошибка I/O
	if _, err := OpenWorldMeta(filepath.Join(dir, "нет-такого")); err == nil {
		t.Error("Ожидалась ошибка для отсутствующего файла")
	}
}
