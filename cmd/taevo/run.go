package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"taevo/internal/assign"
	"taevo/internal/dataset"
	"taevo/internal/evolve"
	"taevo/internal/pareto"
	"taevo/internal/report"
	"taevo/internal/runconfig"
	"taevo/internal/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Запустить цикл эволюции и записать недоминируемый фронт в CSV",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("config", "", "путь к YAML-файлу конфигурации (необязателен)")
	f.String("tas", "", "путь к CSV с данными TA (переопределяет конфигурацию)")
	f.String("sections", "", "путь к CSV с данными секций (переопределяет конфигурацию)")
	f.String("out", "", "путь к выходному CSV (переопределяет конфигурацию)")
	f.String("group", "", "имя группы в отчёте (переопределяет конфигурацию)")
	f.Int64("seed", 0, "зерно ГПСЧ; 0 — взять энтропию из времени запуска")
	f.Int("time-limit", 0, "бюджет времени в секундах (переопределяет конфигурацию)")
	f.Int("prune-every", 0, "период Pareto-чистки в итерациях (переопределяет конфигурацию)")
	f.Int("status-every", 0, "период статусных записей в итерациях (переопределяет конфигурацию)")
	f.String("metrics-addr", "", "адрес HTTP-сервера /metrics и /healthz (пусто — отключён)")
	f.Bool("verbose", false, "подробное логирование (уровень Debug)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()

	configPath, _ := f.GetString("config")
	cfg, err := runconfig.Load(configPath)
	if err != nil {
		return err
	}

	if v, _ := f.GetString("tas"); v != "" {
		cfg.TAsPath = v
	}
	if v, _ := f.GetString("sections"); v != "" {
		cfg.SectionsPath = v
	}
	if v, _ := f.GetString("out"); v != "" {
		cfg.OutputPath = v
	}
	if v, _ := f.GetString("group"); v != "" {
		cfg.GroupName = v
	}
	if v, _ := f.GetInt64("seed"); v != 0 {
		cfg.Seed = v
	}
	if v, _ := f.GetInt("time-limit"); v != 0 {
		cfg.TimeLimitSeconds = v
	}
	if v, _ := f.GetInt("prune-every"); v != 0 {
		cfg.PruneEvery = v
	}
	if v, _ := f.GetInt("status-every"); v != 0 {
		cfg.StatusEvery = v
	}
	if v, _ := f.GetString("metrics-addr"); v != "" {
		cfg.MetricsAddr = v
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("конфигурация прогона невалидна: %w", err)
	}

	if verbose, _ := f.GetBool("verbose"); verbose {
		telemetry.SetLevel(logrus.DebugLevel)
	}
	runID := uuid.New().String()
	log := telemetry.Logger().WithField("run_id", runID)

	tables, err := dataset.Load(cfg.TAsPath, cfg.SectionsPath)
	if err != nil {
		return err
	}
	if err := tables.Validate(); err != nil {
		return fmt.Errorf("датасет невалиден: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.WithFields(logrus.Fields{
		"tas":      tables.NumTAs(),
		"sections": tables.NumSections(),
		"seed":     seed,
	}).Info("taevo: датасет загружен")

	reporter := telemetry.NewReporter()
	var metricsSrv *telemetry.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = telemetry.NewServer(cfg.MetricsAddr)
		if err := metricsSrv.Start(); err != nil {
			return fmt.Errorf("запуск HTTP-сервера метрик: %w", err)
		}
		log.WithField("addr", cfg.MetricsAddr).Info("taevo: сервер метрик запущен")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solver, err := evolve.New(evolve.Config{
		TimeLimitSeconds: cfg.TimeLimitSeconds,
		PruneEvery:       cfg.PruneEvery,
		StatusEvery:      cfg.StatusEvery,
	}, rng)
	if err != nil {
		return err
	}
	solver.Reporter = reporter

	initial := assign.Random(tables.NumTAs(), tables.NumSections(), rng)

	store, runErr := solver.Run(ctx, tables, initial)
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = metricsSrv.Shutdown(shutdownCtx)
		cancel()
	}
	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("цикл эволюции завершился с ошибкой: %w", runErr)
	}
	if store == nil {
		return fmt.Errorf("цикл эволюции не вернул популяцию")
	}

	pareto.Prune(store)

	var rows []report.Row
	for _, eval := range store.Evaluations() {
		rows = append(rows, report.Row{GroupName: cfg.GroupName, Eval: eval})
	}
	if err := report.WriteCSV(cfg.OutputPath, rows); err != nil {
		return fmt.Errorf("запись отчёта: %w", err)
	}

	log.WithFields(logrus.Fields{
		"front_size": len(rows),
		"output":     cfg.OutputPath,
	}).Info("taevo: завершено")
	return nil
}
