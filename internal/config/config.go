package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Все поля опциональны: у каждого есть env-fallback и дефолт.

type Config struct {
	World WorldConfig `yaml:"world"`
	Log   LogConfig   `yaml:"log"`
}

type WorldConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// GetWorldPath возвращает путь к каталогу мира с поддержкой fallback значений
func (w *WorldConfig) GetWorldPath() string {
	return getStringWithEnvFallback(w.Path, "VOXEL_WORLD", "./world")
}

// GetLevel возвращает уровень логирования с поддержкой fallback значений
func (l *LogConfig) GetLevel() string {
	return getStringWithEnvFallback(l.Level, "VOXEL_LOG_LEVEL", "info")
}

// GetDir возвращает каталог логов с поддержкой fallback значений
func (l *LogConfig) GetDir() string {
	return getStringWithEnvFallback(l.Dir, "VOXEL_LOG_DIR", "logs")
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}

	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает
// пустой конфиг (работают env-fallback'и и дефолты).
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
