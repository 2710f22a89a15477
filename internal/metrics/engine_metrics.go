package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineMetrics регистрирует метрики генерации и мешинга в дефолтном регистре.
// Использование:
//
//	em := metrics.NewEngineMetrics("voxel")
//	em.ObserveGeneration(elapsed, chunks, trees)
//	em.ObserveMesh(elapsed, quads)
//	go em.Serve(2112)
//
// Метрики:
// * world_generate_duration_seconds — histogram
// * chunks_generated_total — counter
// * trees_planted_total — counter
// * chunk_mesh_duration_seconds — histogram
// * mesh_quads_total — counter
type EngineMetrics struct {
	genDuration  prometheus.Histogram
	chunksTotal  prometheus.Counter
	treesTotal   prometheus.Counter
	meshDuration prometheus.Histogram
	quadsTotal   prometheus.Counter
}

// NewEngineMetrics создаёт метрики и регистрирует их в дефолтном регистре.
func NewEngineMetrics(namespace string) *EngineMetrics {
	em := &EngineMetrics{
		genDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "world_generate_duration_seconds",
			Help:      "Длительность полной генерации мира.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
		chunksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		treesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trees_planted_total",
			Help:      "Общее число посаженных деревьев.",
		}),
		meshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_mesh_duration_seconds",
			Help:      "Длительность перестроения меша одного чанка.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		quadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mesh_quads_total",
			Help:      "Общее число сгенерированных квадов.",
		}),
	}

	prometheus.MustRegister(em.genDuration, em.chunksTotal, em.treesTotal, em.meshDuration, em.quadsTotal)
	return em
}

// ObserveGeneration фиксирует итог генерации мира
func (em *EngineMetrics) ObserveGeneration(elapsed time.Duration, chunks, trees int) {
	em.genDuration.Observe(elapsed.Seconds())
	em.chunksTotal.Add(float64(chunks))
	em.treesTotal.Add(float64(trees))
}

// ObserveMesh фиксирует перестроение меша одного чанка
func (em *EngineMetrics) ObserveMesh(elapsed time.Duration, quads int) {
	em.meshDuration.Observe(elapsed.Seconds())
	em.quadsTotal.Add(float64(quads))
}

// Serve поднимает HTTP-эндпоинт /metrics на указанном порту (блокирующий вызов)
func (em *EngineMetrics) Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
