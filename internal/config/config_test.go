package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PAWCARE_MODE", "")
	t.Setenv("PAWCARE_DATA_DIR", "")
	t.Setenv("PORT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeLocal {
		t.Fatalf("expected local default, got %q", cfg.Mode)
	}
	if cfg.DataDir != "data" || cfg.UploadDir != "uploads" || cfg.Addr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestFromEnv_RemoteRequiresBaseURL(t *testing.T) {
	t.Setenv("PAWCARE_MODE", "remote")
	t.Setenv("API_BASE_URL", "")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for remote mode without API_BASE_URL")
	}

	t.Setenv("API_BASE_URL", "http://clinic.example")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeRemote {
		t.Fatalf("expected remote mode, got %q", cfg.Mode)
	}
}

func TestFromEnv_UnknownModeRejected(t *testing.T) {
	t.Setenv("PAWCARE_MODE", "hybrid")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestFromEnv_PortOverride(t *testing.T) {
	t.Setenv("PAWCARE_MODE", "")
	t.Setenv("PORT", "9090")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
}
