package world

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики ядра карты. Регистрируются в дефолтном регистре; CLI по
// желанию поднимает /metrics через promhttp.
//
// * voxel_map_block_fetches_total{backend,status} — counter
// * voxel_map_block_decode_errors_total — counter
// * voxel_map_block_decode_duration_seconds — histogram
var (
	blockFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voxel_map",
		Name:      "block_fetches_total",
		Help:      "Общее число запросов блоков к бэкенду.",
	}, []string{"backend", "status"})

	blockDecodeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "voxel_map",
		Name:      "block_decode_errors_total",
		Help:      "Общее число блоков, не прошедших декодирование.",
	})

	blockDecodeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "voxel_map",
		Name:      "block_decode_duration_seconds",
		Help:      "Длительность декодирования блока.",
		Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
)
