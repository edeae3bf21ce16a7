package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("WHATSAPP_NUMBER", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg := Load()

	if cfg.BackendURL != "http://localhost:5000/api" {
		t.Errorf("unexpected backend default: %s", cfg.BackendURL)
	}
	if cfg.WhatsAppNumber != "+8801323376571" {
		t.Errorf("unexpected WhatsApp default: %s", cfg.WhatsAppNumber)
	}
	if cfg.StoreDriver != "memory" {
		t.Errorf("unexpected store driver default: %s", cfg.StoreDriver)
	}
	if cfg.Port != "8080" {
		t.Errorf("unexpected port default: %s", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")
	t.Setenv("BACKEND_URL", "https://api.quickbite.example/api")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.BackendURL != "https://api.quickbite.example/api" {
		t.Errorf("override ignored: %s", cfg.BackendURL)
	}
	if cfg.StoreDriver != "redis" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("redis settings ignored: %+v", cfg)
	}
}
