package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"nextprime/pkg/prime"
)

// ErrInvalidConfig 表示配置文件内容不合法
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config 命令行工具的全局配置
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Prime PrimeConfig `yaml:"prime"`
	Check CheckConfig `yaml:"check"`
	Walk  WalkConfig  `yaml:"walk"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // json, console
	Output     string `yaml:"output"` // stderr, file, both
	FilePath   string `yaml:"file_path"`
	MaxSize    int    `yaml:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

// PrimeConfig 素性测试配置
type PrimeConfig struct {
	SieveLimit             int `yaml:"sieve_limit"`
	SelfridgeMaxIterations int `yaml:"selfridge_max_iterations"`
}

// CheckConfig check 子命令配置
type CheckConfig struct {
	Concurrency int `yaml:"concurrency"` // 并发检查的候选数上限
}

// WalkConfig walk 子命令配置
type WalkConfig struct {
	Count   int           `yaml:"count"`   // 连续求下一个素数的次数
	Timeout time.Duration `yaml:"timeout"` // 整个 walk 的时间预算，0 表示不限
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Prime: PrimeConfig{
			SieveLimit:             prime.DefaultSieveLimit,
			SelfridgeMaxIterations: prime.DefaultSelfridgeMaxIterations,
		},
		Check: CheckConfig{Concurrency: 4},
		Walk:  WalkConfig{Count: 10},
	}
}

// Load 在默认配置之上加载 YAML 配置文件，path 为空时直接返回默认配置
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Log.Output {
	case "stderr":
	case "file", "both":
		if c.Log.FilePath == "" {
			return fmt.Errorf("%w: log.file_path required for output %q", ErrInvalidConfig, c.Log.Output)
		}
	default:
		return fmt.Errorf("%w: log.output %q", ErrInvalidConfig, c.Log.Output)
	}
	if c.Prime.SieveLimit < 0 {
		return fmt.Errorf("%w: prime.sieve_limit %d", ErrInvalidConfig, c.Prime.SieveLimit)
	}
	if c.Prime.SelfridgeMaxIterations < 0 {
		return fmt.Errorf("%w: prime.selfridge_max_iterations %d", ErrInvalidConfig, c.Prime.SelfridgeMaxIterations)
	}
	if c.Check.Concurrency < 1 {
		return fmt.Errorf("%w: check.concurrency %d", ErrInvalidConfig, c.Check.Concurrency)
	}
	if c.Walk.Count < 0 {
		return fmt.Errorf("%w: walk.count %d", ErrInvalidConfig, c.Walk.Count)
	}
	if c.Walk.Timeout < 0 {
		return fmt.Errorf("%w: walk.timeout %s", ErrInvalidConfig, c.Walk.Timeout)
	}
	return nil
}

// TesterConfig 转换为 prime.Config
func (p PrimeConfig) TesterConfig() *prime.Config {
	return &prime.Config{
		SieveLimit:             p.SieveLimit,
		SelfridgeMaxIterations: p.SelfridgeMaxIterations,
	}
}
