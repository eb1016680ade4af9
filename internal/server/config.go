package server

import (
	"os"
	"strings"
)

const (
	listenAddrEnvKey     = "RIG_LISTEN_ADDR"
	allowedOriginsEnvKey = "RIG_ALLOWED_ORIGINS"

	defaultListenAddr = ":8080"
)

// AddrFromEnv returns the address the HTTP server listens on.
func AddrFromEnv() string {
	if addr := strings.TrimSpace(os.Getenv(listenAddrEnvKey)); addr != "" {
		return addr
	}
	return defaultListenAddr
}

// AllowedOriginsFromEnv returns the explicit CORS origins. An empty list
// means every origin is allowed.
func AllowedOriginsFromEnv() []string {
	raw := os.Getenv(allowedOriginsEnvKey)
	if raw == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
