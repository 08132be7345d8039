// Package remote implementa los repositorios contra un backend HTTP
// compartido. El servidor es la autoridad: ids, defaults y el log de
// actividad los maneja él; acá solo se traduce el wire.
package remote

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pawcare/internal/platform/httpclient"
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration // 0 => httpclient.DefaultTimeout
}

// Client agrupa el transporte para todos los repos remotos.
type Client struct {
	hc *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("remote: base url is required")
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Token, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("remote: %w", err)
	}
	return &Client{hc: hc}, nil
}

// NewClientWithHTTP inyecta un httpclient ya armado (tests con httpmock).
func NewClientWithHTTP(hc *httpclient.Client) *Client {
	return &Client{hc: hc}
}

// isNotFound detecta el 404 del server; los Get-por-id lo traducen a
// (nil, nil) para calzar con la política de falla blanda del modo local.
func isNotFound(err error) bool {
	var he *httpclient.HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusNotFound
}
