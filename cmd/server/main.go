package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/metrics"
	"github.com/annel0/voxel-engine/internal/world"
)

func main() {
	configPath := flag.String("config", "", "Путь к YAML конфигурации (или ENV VOXEL_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("engine"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🌍 Запуск воксельного движка...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // Дефолты
		logging.Debug("Конфигурация не задана, используются дефолты")
	}

	params := world.Params{
		Seed:             cfg.World.GetSeed(),
		HorizontalChunks: cfg.World.GetHorizontalChunks(),
		HeightChunks:     cfg.World.GetHeightChunks(),
		TerrainScale:     cfg.World.GetTerrainScale(),
		BiomeScale:       cfg.World.GetBiomeScale(),
		TreeDensity:      cfg.World.GetTreeDensity(),
		SeaLevel:         cfg.World.GetSeaLevel(),
	}
	logging.Info("📡 Параметры мира: seed=%d, размер=%dx%d чанков",
		params.Seed, params.HorizontalChunks, params.HeightChunks)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===
	engineMetrics := metrics.NewEngineMetrics("voxel")
	processStats := metrics.NewProcessStats()

	wm, err := world.NewWorldManager(params)
	if err != nil {
		logging.Error("❌ Ошибка создания мира: %v", err)
		log.Fatalf("❌ Ошибка создания мира: %v", err)
	}

	// === ГЕНЕРАЦИЯ МИРА ===
	stats := wm.Generate()
	engineMetrics.ObserveGeneration(stats.Elapsed, stats.Chunks, stats.Trees)

	// Первичное построение мешей всех чанков
	totalQuads := 0
	for coords, chunk := range wm.Chunks() {
		started := time.Now()
		mesh := chunk.Mesh()
		engineMetrics.ObserveMesh(time.Since(started), len(mesh))
		logging.LogChunkMesh(coords.X, coords.Y, coords.Z, len(mesh), time.Since(started))
		totalQuads += len(mesh)
	}
	logging.Info("✅ Мир готов: %d чанков, %d деревьев, %d квадов", stats.Chunks, stats.Trees, totalQuads)

	// === МЕТРИКИ ===
	metricsPort := cfg.Server.GetMetricsPort()
	go func() {
		logging.Info("📊 Метрики Prometheus на :%d/metrics", metricsPort)
		if err := engineMetrics.Serve(metricsPort); err != nil {
			logging.Error("Ошибка HTTP-сервера метрик: %v", err)
		}
	}()

	// === ГЛАВНЫЙ ЦИКЛ ===
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()
	status := time.NewTicker(30 * time.Second)
	defer status.Stop()

	for {
		select {
		case <-frame.C:
			// Мир статичен; тик держит контракт внешнего цикла
			wm.Update(1.0 / 60.0)

		case <-status.C:
			cpuPercent, _ := processStats.CPUUsage()
			logging.Info("⏱ Статус: uptime=%s, mem=%.1fMB, cpu=%.1f%%, tick=%d",
				processStats.Uptime(), processStats.MemoryUsageMB(), cpuPercent, wm.CurrentTick())

		case sig := <-sigCh:
			logging.Info("🛑 Получен сигнал %v, завершение работы", sig)
			return
		}
	}
}
