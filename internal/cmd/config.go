package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matchroom/auction/internal/auction"
)

// Config is the process configuration, loaded from a yaml file with
// environment overrides on top.
type Config struct {
	Server struct {
		Port      string `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`
	Catalog struct {
		Path string `yaml:"path"`
	} `yaml:"catalog"`
	Auction struct {
		StartingBalance    int `yaml:"starting_balance"`
		RosterCap          int `yaml:"roster_cap"`
		OpenPhaseSec       int `yaml:"open_phase_sec"`
		BiddingPhaseSec    int `yaml:"bidding_phase_sec"`
		IncrementThreshold int `yaml:"increment_threshold"`
		SmallIncrement     int `yaml:"small_increment"`
		LargeIncrement     int `yaml:"large_increment"`
		DrawSuspenseMs     int `yaml:"draw_suspense_ms"`
		LogViewLimit       int `yaml:"log_view_limit"`
	} `yaml:"auction"`
}

func loadConfig(path string) (*Config, error) {
	var config Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config.Server.Port = getEnv("PORT", firstNonEmpty(config.Server.Port, "8080"))
	config.Server.StaticDir = getEnv("STATIC_DIR", firstNonEmpty(config.Server.StaticDir, "public"))
	config.Catalog.Path = getEnv("CATALOG_PATH", firstNonEmpty(config.Catalog.Path, "data/legends_players.json"))

	return &config, nil
}

// Rules maps the configuration onto the auction ruleset, falling back to the
// documented defaults for anything unset.
func (c *Config) Rules() auction.Rules {
	rules := auction.DefaultRules()
	if v := c.Auction.StartingBalance; v > 0 {
		rules.StartingBalance = v
	}
	if v := c.Auction.RosterCap; v > 0 {
		rules.RosterCap = v
	}
	if v := c.Auction.OpenPhaseSec; v > 0 {
		rules.OpenPhaseSec = v
	}
	if v := c.Auction.BiddingPhaseSec; v > 0 {
		rules.BiddingPhaseSec = v
	}
	if v := c.Auction.IncrementThreshold; v > 0 {
		rules.IncrementThreshold = v
	}
	if v := c.Auction.SmallIncrement; v > 0 {
		rules.SmallIncrement = v
	}
	if v := c.Auction.LargeIncrement; v > 0 {
		rules.LargeIncrement = v
	}
	if v := c.Auction.DrawSuspenseMs; v > 0 {
		rules.DrawSuspense = time.Duration(v) * time.Millisecond
	}
	if v := c.Auction.LogViewLimit; v > 0 {
		rules.LogViewLimit = v
	}
	return rules
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
