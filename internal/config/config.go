package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for the combat engine and its host CLI.
type Engine struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// ContentDir overrides the bundled content tables when set.
	ContentDir string `yaml:"content_dir"`

	Combat   Combat         `yaml:"combat"`
	Rates    Rates          `yaml:"rates"`
	Player   Player         `yaml:"player"`
	Database DatabaseConfig `yaml:"database"`
}

// Combat tunes session resolution.
type Combat struct {
	BattleLogCap        int     `yaml:"battle_log_cap"`        // most recent entries kept
	RetreatPenalty      float64 `yaml:"retreat_penalty"`       // fraction of each pool lost
	DefaultActionWeight float64 `yaml:"default_action_weight"` // enemy move weight without probability
	StunSkipsTurn       bool    `yaml:"stun_skips_turn"`
}

// Rates holds loot multipliers.
type Rates struct {
	LootChanceMultiplier float64 `yaml:"loot_chance_multiplier"`
	LootAmountMultiplier float64 `yaml:"loot_amount_multiplier"`
}

// Player describes the player's ship and starting resources.
type Player struct {
	MaxHealth int              `yaml:"max_health"`
	MaxShield int              `yaml:"max_shield"`
	Resources map[string]int64 `yaml:"resources"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultRates returns x1 loot multipliers.
func DefaultRates() Rates {
	return Rates{
		LootChanceMultiplier: 1.0,
		LootAmountMultiplier: 1.0,
	}
}

// DefaultCombat returns the standard resolution settings.
func DefaultCombat() Combat {
	return Combat{
		BattleLogCap:        50,
		RetreatPenalty:      0.25,
		DefaultActionWeight: 0.5,
		StunSkipsTurn:       false,
	}
}

// Default returns Engine config with sensible defaults.
func Default() Engine {
	return Engine{
		LogLevel: "info",
		Combat:   DefaultCombat(),
		Rates:    DefaultRates(),
		Player: Player{
			MaxHealth: 100,
			MaxShield: 50,
			Resources: map[string]int64{
				"ENERGY":  40,
				"SCRAP":   20,
				"INSIGHT": 10,
				"CREW":    6,
			},
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skirmish",
			Password: "skirmish",
			DBName:   "skirmish",
			SSLMode:  "disable",
		},
	}
}

// Load loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Engine, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (e Engine) Validate() error {
	if e.Combat.BattleLogCap <= 0 {
		return fmt.Errorf("combat.battle_log_cap must be positive, got %d", e.Combat.BattleLogCap)
	}
	if e.Combat.RetreatPenalty < 0 || e.Combat.RetreatPenalty > 1 {
		return fmt.Errorf("combat.retreat_penalty must be in [0,1], got %v", e.Combat.RetreatPenalty)
	}
	if e.Rates.LootChanceMultiplier < 0 || e.Rates.LootAmountMultiplier < 0 {
		return fmt.Errorf("rates must not be negative")
	}
	if e.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.max_health must be positive, got %d", e.Player.MaxHealth)
	}
	if e.Player.MaxShield < 0 {
		return fmt.Errorf("player.max_shield must not be negative, got %d", e.Player.MaxShield)
	}
	return nil
}
