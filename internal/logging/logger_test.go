package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		" info ":  INFO,
		"Warn":    WARN,
		"error":   ERROR,
		"":        INFO,
		"мусор":   INFO,
		"verbose": INFO,
	}

	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q): ожидалось %v, получено %v", input, want, got)
		}
	}
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger("test", dir, WARN)
	if err != nil {
		t.Fatalf("Ошибка создания логгера: %v", err)
	}

	logger.Logf(DEBUG, "отладочное сообщение %d", 42)
	logger.Logf(ERROR, "сообщение об ошибке")
	logger.Close()

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Ожидался один файл логов, получено %d (err=%v)", len(entries), err)
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("Ошибка чтения файла логов: %v", err)
	}

	// В файл попадают все уровни, независимо от порога консоли
	content := string(data)
	if !strings.Contains(content, "[DEBUG] отладочное сообщение 42") {
		t.Errorf("В файле нет DEBUG-записи: %q", content)
	}
	if !strings.Contains(content, "[ERROR] сообщение об ошибке") {
		t.Errorf("В файле нет ERROR-записи: %q", content)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	// До InitDefault пакетные функции не должны паниковать
	var l *Logger
	l.Logf(INFO, "сообщение в никуда")
	l.Close()
}
