package config

import (
	"fmt"
	"os"
	"strings"
)

// Mode define el backend de persistencia del proceso.
// Se fija al construir los repos; no hay toggle global ni override por llamada.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

type Config struct {
	Mode Mode

	// Local: store embebido (badger) o Postgres si DBDSN viene seteado.
	DataDir   string
	DBDSN     string
	UploadDir string

	// Remote: backend HTTP al que se delega todo.
	APIBaseURL string
	APIToken   string

	Addr string
}

// FromEnv lee la configuración del proceso. El resultado se inyecta;
// ningún componente vuelve a mirar env después de esto.
func FromEnv() (Config, error) {
	cfg := Config{
		Mode:       ModeLocal,
		DataDir:    envOr("PAWCARE_DATA_DIR", "data"),
		DBDSN:      os.Getenv("DB_DSN"),
		UploadDir:  envOr("UPLOAD_DIR", "uploads"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		APIToken:   os.Getenv("API_TOKEN"),
		Addr:       ":8080",
	}

	switch m := strings.ToLower(strings.TrimSpace(os.Getenv("PAWCARE_MODE"))); m {
	case "", string(ModeLocal):
	case string(ModeRemote):
		cfg.Mode = ModeRemote
	default:
		return Config{}, fmt.Errorf("config: unknown PAWCARE_MODE %q", m)
	}

	if cfg.Mode == ModeRemote && strings.TrimSpace(cfg.APIBaseURL) == "" {
		return Config{}, fmt.Errorf("config: remote mode requires API_BASE_URL")
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
