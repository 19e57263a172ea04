package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации демо.
// Все поля опциональны: нулевые значения заменяются дефолтами через геттеры.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Mining  MiningConfig  `yaml:"mining"`
	Hotbar  HotbarConfig  `yaml:"hotbar"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type WorldConfig struct {
	Seed        int64 `yaml:"seed"`
	Radius      int   `yaml:"radius"`       // Радиус стартовой площадки в блоках
	GroundLevel int   `yaml:"ground_level"` // Уровень поверхности (Y верхнего блока)
}

type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpForce   float64 `yaml:"jump_force"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	SprintSpeed float64 `yaml:"sprint_speed"`
	SubSteps    int     `yaml:"sub_steps"`
}

type MiningConfig struct {
	BaseTime float64 `yaml:"base_time"` // Базовое время разрушения, сек
	MinTime  float64 `yaml:"min_time"`  // Нижняя граница времени разрушения, сек
}

type HotbarConfig struct {
	Size int `yaml:"size"`
}

type MetricsConfig struct {
	Port                int `yaml:"port"`
	PerfIntervalSeconds int `yaml:"perf_interval_seconds"`
}

// GetSeed возвращает сид мира (0 → дефолтный сид)
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	return 1337
}

// GetRadius возвращает радиус стартовой площадки
func (w *WorldConfig) GetRadius() int {
	if w.Radius > 0 {
		return w.Radius
	}
	return 16
}

// GetGroundLevel возвращает уровень поверхности
func (w *WorldConfig) GetGroundLevel() int {
	if w.GroundLevel != 0 {
		return w.GroundLevel
	}
	return 0
}

// GetGravity возвращает ускорение свободного падения (блоков/с²)
func (p *PhysicsConfig) GetGravity() float64 {
	if p.Gravity > 0 {
		return p.Gravity
	}
	return 32.0
}

// GetJumpForce возвращает начальную скорость прыжка (блоков/с)
func (p *PhysicsConfig) GetJumpForce() float64 {
	if p.JumpForce > 0 {
		return p.JumpForce
	}
	return 9.8
}

// GetWalkSpeed возвращает максимальную горизонтальную скорость шага
func (p *PhysicsConfig) GetWalkSpeed() float64 {
	if p.WalkSpeed > 0 {
		return p.WalkSpeed
	}
	return 4.3
}

// GetSprintSpeed возвращает максимальную скорость бега
func (p *PhysicsConfig) GetSprintSpeed() float64 {
	if p.SprintSpeed > 0 {
		return p.SprintSpeed
	}
	return 5.6
}

// GetSubSteps возвращает число подшагов интеграции за тик
func (p *PhysicsConfig) GetSubSteps() int {
	if p.SubSteps > 0 {
		return p.SubSteps
	}
	return 5
}

// GetBaseTime возвращает базовое время разрушения блока
func (m *MiningConfig) GetBaseTime() float64 {
	if m.BaseTime > 0 {
		return m.BaseTime
	}
	return 0.8
}

// GetMinTime возвращает минимальное время разрушения блока
func (m *MiningConfig) GetMinTime() float64 {
	if m.MinTime > 0 {
		return m.MinTime
	}
	return 0.15
}

// GetSize возвращает размер хотбара
func (h *HotbarConfig) GetSize() int {
	if h.Size > 0 {
		return h.Size
	}
	return 8
}

// GetPort возвращает порт метрик с приоритетом: config -> env -> default
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "SANDBOX_METRICS_PORT", 2112)
}

// GetPerfInterval возвращает интервал perf-лога в секундах
func (m *MetricsConfig) GetPerfInterval() int {
	if m.PerfIntervalSeconds > 0 {
		return m.PerfIntervalSeconds
	}
	return 30
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV SANDBOX_CONFIG или возвращает nil, nil.
// Пустой Config{} безопасен: все геттеры подставляют дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
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

// Default возвращает конфиг со всеми дефолтными значениями
func Default() *Config {
	return &Config{}
}
