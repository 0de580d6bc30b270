package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"SmartSaver/internal/heuristic"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Session struct {
		Dir       string `yaml:"dir"`
		DefaultID string `yaml:"default_id"`
	} `yaml:"session"`
	Schedule struct {
		WeeklyCron  string `yaml:"weekly_cron"`
		MonthlyCron string `yaml:"monthly_cron"`
	} `yaml:"schedule"`
	Seed struct {
		OnStart bool   `yaml:"on_start"`
		UserID  string `yaml:"user_id"`
		Days    int    `yaml:"days"`
	} `yaml:"seed"`
	Policy struct {
		BudgetRule struct {
			Essentials float64 `yaml:"essentials"`
			Wants      float64 `yaml:"wants"`
			Savings    float64 `yaml:"savings"`
		} `yaml:"budget_rule"`
		CategoryLimits  map[string]float64 `yaml:"category_limits"`
		OverspendGrace  float64            `yaml:"overspend_grace"`
		MaxSavingsSlice float64            `yaml:"max_savings_slice"`
	} `yaml:"policy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults fill every gap.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SMARTSAVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SMARTSAVER_DB"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SMARTSAVER_SESSION_DIR"); v != "" {
		cfg.Session.Dir = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("CRON_MONTHLY"); v != "" {
		cfg.Schedule.MonthlyCron = v
	}
	if v := os.Getenv("SEED_ON_START"); v == "true" {
		cfg.Seed.OnStart = true
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/smartsaver.db"
	}
	if cfg.Session.Dir == "" {
		cfg.Session.Dir = "data/sessions"
	}
	if cfg.Session.DefaultID == "" {
		cfg.Session.DefaultID = "demo"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 8 * * 1"
	}
	if cfg.Schedule.MonthlyCron == "" {
		cfg.Schedule.MonthlyCron = "0 0 9 1 * *"
	}
	if cfg.Seed.UserID == "" {
		cfg.Seed.UserID = "demo"
	}
	if cfg.Seed.Days == 0 {
		cfg.Seed.Days = 90
	}
	if cfg.Policy.BudgetRule.Essentials == 0 && cfg.Policy.BudgetRule.Wants == 0 && cfg.Policy.BudgetRule.Savings == 0 {
		cfg.Policy.BudgetRule.Essentials = 0.50
		cfg.Policy.BudgetRule.Wants = 0.30
		cfg.Policy.BudgetRule.Savings = 0.20
	}
	if cfg.Policy.OverspendGrace == 0 {
		cfg.Policy.OverspendGrace = 0.10
	}
	if cfg.Policy.MaxSavingsSlice == 0 {
		cfg.Policy.MaxSavingsSlice = 0.90
	}

	return cfg, nil
}

// Validate checks that the configured values are coherent.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	rule := c.Policy.BudgetRule
	if rule.Essentials < 0 || rule.Wants < 0 || rule.Savings < 0 {
		return fmt.Errorf("policy.budget_rule ratios must be non-negative")
	}
	if sum := rule.Essentials + rule.Wants + rule.Savings; math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("policy.budget_rule must sum to 1.0, got %.3f", sum)
	}
	if c.Policy.MaxSavingsSlice <= 0 || c.Policy.MaxSavingsSlice > 1 {
		return fmt.Errorf("policy.max_savings_slice must be in (0, 1]")
	}
	for cat, limit := range c.Policy.CategoryLimits {
		if limit < 0 || limit > 1 {
			return fmt.Errorf("policy.category_limits[%s] must be in [0, 1]", cat)
		}
	}
	if c.Seed.Days < 0 {
		return fmt.Errorf("seed.days must be non-negative")
	}
	return nil
}

// HeuristicPolicy converts the config's policy section into the thresholds
// the calculators consume, falling back to built-in defaults per field.
func (c *Config) HeuristicPolicy() heuristic.Policy {
	p := heuristic.DefaultPolicy()
	p.BudgetRule.Essentials = c.Policy.BudgetRule.Essentials
	p.BudgetRule.Wants = c.Policy.BudgetRule.Wants
	p.BudgetRule.Savings = c.Policy.BudgetRule.Savings
	if len(c.Policy.CategoryLimits) > 0 {
		p.CategoryLimits = c.Policy.CategoryLimits
	}
	p.OverspendGrace = c.Policy.OverspendGrace
	p.MaxSavingsSlice = c.Policy.MaxSavingsSlice
	return p
}
