// Package runconfig описывает параметры одного прогона taevo: датасет,
// бюджет цикла эволюции и путь вывода. Загружается опционально из YAML-файла
// (gopkg.in/yaml.v3) и дополняется/переопределяется флагами CLI.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация прогона.
type Config struct {
	// TAsPath и SectionsPath — пути к CSV-датасету (internal/dataset).
	TAsPath      string `yaml:"tas_path"`
	SectionsPath string `yaml:"sections_path"`

	// GroupName — имя группы, записываемое в каждую строку отчёта.
	GroupName string `yaml:"group_name"`
	// OutputPath — путь CSV-файла отчёта.
	OutputPath string `yaml:"output_path"`

	// Seed — зерно ГПСЧ. 0 означает "не задано" — вызывающий код сам решает,
	// брать ли энтропию из времени (cmd/taevo) или оставить 0 воспроизводимым.
	Seed int64 `yaml:"seed"`

	// TimeLimitSeconds, PruneEvery, StatusEvery — см. evolve.Config.
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
	PruneEvery       int `yaml:"prune_every"`
	StatusEvery      int `yaml:"status_every"`

	// MetricsAddr — адрес HTTP-сервера /metrics + /healthz. Пустая строка
	// отключает сервер (по умолчанию).
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig возвращает значения по умолчанию, согласованные с
// evolve.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		GroupName:        "taevo",
		OutputPath:       "output.csv",
		TimeLimitSeconds: 300,
		PruneEvery:       100,
		StatusEvery:      10_000,
	}
}

// Load читает YAML-файл по path и накладывает его значения на
// DefaultConfig. Отсутствующий файл — не ошибка, если path пуст.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("чтение конфигурации %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("разбор конфигурации %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TAsPath == "" {
		return fmt.Errorf("tas_path не задан")
	}
	if c.SectionsPath == "" {
		return fmt.Errorf("sections_path не задан")
	}
	if c.GroupName == "" {
		return fmt.Errorf("group_name не задан")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path не задан")
	}
	if c.TimeLimitSeconds <= 0 {
		return fmt.Errorf("time_limit_seconds должно быть > 0 (получено %d)", c.TimeLimitSeconds)
	}
	if c.PruneEvery <= 0 {
		return fmt.Errorf("prune_every должно быть > 0 (получено %d)", c.PruneEvery)
	}
	if c.StatusEvery <= 0 {
		return fmt.Errorf("status_every должно быть > 0 (получено %d)", c.StatusEvery)
	}
	return nil
}
