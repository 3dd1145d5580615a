// SPDX-License-Identifier: MIT

// Package config loads the gridroute demo settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvGridSize        = "GRID_SIZE"
	EnvGridSeed        = "GRID_SEED"
	EnvEdgeProbability = "GRID_EDGE_PROBABILITY"
	EnvTieBreak        = "ROUTE_TIE_BREAK"
	EnvRouteImage      = "ROUTE_IMAGE"
	EnvGridDump        = "GRID_DUMP"
)

// MinGridSize is the smallest accepted grid side.
const MinGridSize = 1

// ErrInvalidValue indicates an environment value that does not parse or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the demo's configuration values.
type Config struct {
	GridSize        int     // Side of the square grid
	Seed            int64   // Random seed; 0 picks a time-based seed
	EdgeProbability float64 // Probability that a candidate link is added
	TieBreak        string  // "first" or "last"
	RouteImage      string  // PNG output path; empty disables rendering
	DumpGrid        bool    // Print every cell before searching
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		GridSize:        100,
		Seed:            0,
		EdgeProbability: 0.5,
		TieBreak:        "first",
	}
}

// Load reads the given .env files (".env" when none are given), then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment on top of Defaults.
func FromEnv() (Config, error) {
	cfg := Defaults()
	var err error

	if cfg.GridSize, err = getEnvAsInt(EnvGridSize, cfg.GridSize); err != nil {
		return Config{}, err
	}
	if cfg.GridSize < MinGridSize {
		return Config{}, fmt.Errorf("%w: %s=%d must be ≥ %d", ErrInvalidValue, EnvGridSize, cfg.GridSize, MinGridSize)
	}
	if cfg.Seed, err = getEnvAsInt64(EnvGridSeed, cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.EdgeProbability, err = getEnvAsFloat(EnvEdgeProbability, cfg.EdgeProbability); err != nil {
		return Config{}, err
	}
	if cfg.EdgeProbability < 0 || cfg.EdgeProbability > 1 {
		return Config{}, fmt.Errorf("%w: %s=%v not in [0,1]", ErrInvalidValue, EnvEdgeProbability, cfg.EdgeProbability)
	}
	cfg.TieBreak = getEnvWithDefault(EnvTieBreak, cfg.TieBreak)
	if cfg.TieBreak != "first" && cfg.TieBreak != "last" {
		return Config{}, fmt.Errorf("%w: %s=%q (want first|last)", ErrInvalidValue, EnvTieBreak, cfg.TieBreak)
	}
	cfg.RouteImage = getEnvWithDefault(EnvRouteImage, cfg.RouteImage)
	if cfg.DumpGrid, err = getEnvAsBool(EnvGridDump, cfg.DumpGrid); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}
