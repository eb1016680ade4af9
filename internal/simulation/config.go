package simulation

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	refreshIntervalEnvKey = "RIG_REFRESH_INTERVAL"
	fleetSizeEnvKey       = "RIG_FLEET_SIZE"

	// DefaultRefreshInterval paces the live dashboard feed.
	DefaultRefreshInterval = 1 * time.Second
)

// RefreshIntervalFromEnv reads the environment variable and falls back to the default interval.
func RefreshIntervalFromEnv() time.Duration {
	return RefreshIntervalFromString(os.Getenv(refreshIntervalEnvKey))
}

// RefreshIntervalFromString parses a duration string with sensible fallback.
func RefreshIntervalFromString(raw string) time.Duration {
	if raw == "" {
		return DefaultRefreshInterval
	}
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid %s value %q: %v, using default %s", refreshIntervalEnvKey, raw, err, DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	if dur <= 0 {
		log.Printf("non-positive %s value %q, using default %s", refreshIntervalEnvKey, raw, DefaultRefreshInterval)
		return DefaultRefreshInterval
	}
	return dur
}

// FleetSizeFromEnv reads the environment variable and falls back to the default fleet size.
func FleetSizeFromEnv() int {
	return FleetSizeFromString(os.Getenv(fleetSizeEnvKey))
}

// FleetSizeFromString parses a fleet size string with sensible fallback.
func FleetSizeFromString(raw string) int {
	if raw == "" {
		return DefaultFleetSize
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s value %q: %v, using default %d", fleetSizeEnvKey, raw, err, DefaultFleetSize)
		return DefaultFleetSize
	}
	if size <= 0 {
		log.Printf("non-positive %s value %q, using default %d", fleetSizeEnvKey, raw, DefaultFleetSize)
		return DefaultFleetSize
	}
	return size
}
