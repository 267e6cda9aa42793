package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
world:
  path: /srv/worlds/main
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка записи тестового конфига: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	if got := cfg.World.GetWorldPath(); got != "/srv/worlds/main" {
		t.Errorf("Ожидался путь /srv/worlds/main, получен %q", got)
	}
	if got := cfg.Log.GetLevel(); got != "debug" {
		t.Errorf("Ожидался уровень debug, получен %q", got)
	}
	if got := cfg.Log.GetDir(); got != "logs" {
		t.Errorf("Ожидался каталог logs по умолчанию, получен %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	// Без пути и без VOXEL_CONFIG возвращается пустой конфиг с дефолтами
	t.Setenv("VOXEL_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Ошибка загрузки пустого конфига: %v", err)
	}

	if got := cfg.World.GetWorldPath(); got != "./world" {
		t.Errorf("Ожидался путь ./world по умолчанию, получен %q", got)
	}
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("VOXEL_WORLD", "/tmp/env-world")

	cfg := &Config{}
	if got := cfg.World.GetWorldPath(); got != "/tmp/env-world" {
		t.Errorf("Ожидался путь из ENV, получен %q", got)
	}

	// Значение из конфига приоритетнее ENV
	cfg.World.Path = "/srv/cfg-world"
	if got := cfg.World.GetWorldPath(); got != "/srv/cfg-world" {
		t.Errorf("Ожидался путь из конфига, получен %q", got)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("world: [невалидно"), 0644); err != nil {
		t.Fatalf("Ошибка записи тестового конфига: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Ожидалась ошибка для некорректного YAML")
	}
}
