package server

import (
	"reflect"
	"testing"
)

func TestAddrFromEnv(t *testing.T) {
	t.Setenv("RIG_LISTEN_ADDR", "")
	if got := AddrFromEnv(); got != defaultListenAddr {
		t.Errorf("AddrFromEnv() = %q, want %q", got, defaultListenAddr)
	}

	t.Setenv("RIG_LISTEN_ADDR", "127.0.0.1:9100")
	if got := AddrFromEnv(); got != "127.0.0.1:9100" {
		t.Errorf("AddrFromEnv() = %q, want 127.0.0.1:9100", got)
	}
}

func TestAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("RIG_ALLOWED_ORIGINS", "")
	if got := AllowedOriginsFromEnv(); got != nil {
		t.Errorf("AllowedOriginsFromEnv() = %v, want nil", got)
	}

	t.Setenv("RIG_ALLOWED_ORIGINS", "https://ops.example.com, https://hq.example.com ,")
	want := []string{"https://ops.example.com", "https://hq.example.com"}
	if got := AllowedOriginsFromEnv(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOriginsFromEnv() = %v, want %v", got, want)
	}
}
