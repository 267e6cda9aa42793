package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/annel0/voxel-light/internal/config"
	"github.com/annel0/voxel-light/internal/logging"
	"github.com/annel0/voxel-light/internal/storage"
	"github.com/annel0/voxel-light/internal/vec"
	"github.com/annel0/voxel-light/internal/world"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configPath  = flag.String("config", "", "путь к YAML конфигурации (или ENV VOXEL_CONFIG)")
		worldPath   = flag.String("world", "", "путь к каталогу мира (переопределяет конфиг)")
		posFlag     = flag.String("pos", "0,0,0", "координаты блока в формате x,y,z")
		metricsAddr = flag.String("metrics", "", "адрес /metrics листенера (например :2112), пусто - выключено")
	)
	flag.Parse()

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	if err := logging.InitDefault("blockdump", cfg.Log.GetDir(), logging.ParseLevel(cfg.Log.GetLevel())); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefault()

	path := *worldPath
	if path == "" {
		path = cfg.World.GetWorldPath()
	}

	pos, err := parsePos(*posFlag)
	if err != nil {
		log.Fatalf("❌ Некорректные координаты %q: %v", *posFlag, err)
	}

	// === ВЫБОР БЭКЕНДА ===
	// Бэкенд выбирается один раз на старте по world.mt; любое
	// неизвестное значение фатально.
	meta, err := world.OpenWorldMeta(filepath.Join(path, "world.mt"))
	if err != nil {
		log.Fatalf("❌ Ошибка чтения world.mt: %v", err)
	}

	backendName, ok := meta.GetStr("backend")
	if !ok {
		log.Fatalf("❌ В world.mt нет ключа backend")
	}

	var backend world.MapBackend
	switch backendName {
	case "sqlite3":
		sqlitePath := filepath.Join(path, "map.sqlite")
		sqlite, err := storage.NewSqliteBackend(sqlitePath)
		if err != nil {
			log.Fatalf("❌ Ошибка открытия %s: %v", sqlitePath, err)
		}
		defer sqlite.Close()
		backend = sqlite
	case "postgres":
		dsn, ok := meta.GetStr("pgsql_connection")
		if !ok {
			log.Fatalf("❌ Для backend=postgres в world.mt нужен ключ pgsql_connection")
		}
		postgres, err := storage.NewPostgresBackend(dsn)
		if err != nil {
			log.Fatalf("❌ Ошибка подключения к postgres: %v", err)
		}
		defer postgres.Close()
		backend = postgres
	default:
		log.Fatalf("❌ Неизвестный backend: %s", backendName)
	}

	logging.Info("🌍 Мир: %s, backend=%s", path, backend.Name())

	// Опциональный Prometheus-листенер
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logging.Error("Ошибка metrics-листенера: %v", err)
			}
		}()
		logging.Info("📊 Метрики доступны на %s/metrics", *metricsAddr)
	}

	worldMap := world.NewMap(backend)
	globalMapping := world.NewGlobalMapping()

	// Нулевая нода интернируется первой и обязана получить id 0
	if airID := globalMapping.GetOrInsertID("air"); airID != 0 {
		log.Fatalf("❌ Нода air получила id %d вместо 0", airID)
	}

	block, err := worldMap.GetBlock(context.Background(), pos)
	if errors.Is(err, world.ErrBlockNotFound) {
		log.Fatalf("❌ Блок (%d,%d,%d) не найден", pos.X, pos.Y, pos.Z)
	}
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки блока (%d,%d,%d): %v", pos.X, pos.Y, pos.Z, err)
	}

	grid, err := blockToGrid(block, globalMapping)
	if err != nil {
		log.Fatalf("❌ Ошибка построения сетки: %v", err)
	}
	logging.Debug("Сетка блока готова: %d значений", len(grid))

	report(block, pos)
}

// parsePos разбирает координаты блока из строки "x,y,z"
func parsePos(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec.Vec3{}, fmt.Errorf("ожидались три компоненты, получено %d", len(parts))
	}

	var components [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return vec.Vec3{}, err
		}
		components[i] = value
	}

	return vec.Vec3{X: components[0], Y: components[1], Z: components[2]}, nil
}

// blockToGrid переводит блок в плоскую сетку из 4096 значений:
// globalID<<16 | param1<<8 | param2. Это шаг подготовки данных для
// рендера; сама загрузка на GPU остается за потребителем.
func blockToGrid(block *world.Block, globalMapping *world.GlobalMapping) ([]uint32, error) {
	grid := make([]uint32, world.Volume)

	for z := 0; z < world.BlockSize; z++ {
		for y := 0; y < world.BlockSize; y++ {
			for x := 0; x < world.BlockSize; x++ {
				node := block.GetNode(vec.Vec3{X: x, Y: y, Z: z})

				name, ok := block.GetNameByID(node.ID)
				if !ok {
					return nil, fmt.Errorf("в таблице имён блока нет локального id %d", node.ID)
				}
				globalID := globalMapping.GetOrInsertID(name)

				value := uint32(globalID) << 16
				value |= uint32(node.Param1) << 8
				value |= uint32(node.Param2)

				grid[z*world.BlockSize*world.BlockSize+y*world.BlockSize+x] = value
			}
		}
	}

	return grid, nil
}

// report печатает сводку по содержимому блока
func report(block *world.Block, pos vec.Vec3) {
	counts := make(map[string]int)

	for z := 0; z < world.BlockSize; z++ {
		for y := 0; y < world.BlockSize; y++ {
			for x := 0; x < world.BlockSize; x++ {
				node := block.GetNode(vec.Vec3{X: x, Y: y, Z: z})
				name, ok := block.GetNameByID(node.ID)
				if !ok {
					name = fmt.Sprintf("<id %d без имени>", node.ID)
				}
				counts[name]++
			}
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	logging.Info("📦 Блок (%d,%d,%d): %d типов нод", pos.X, pos.Y, pos.Z, len(names))
	for _, name := range names {
		logging.Info("  %6d × %s", counts[name], name)
	}
}
