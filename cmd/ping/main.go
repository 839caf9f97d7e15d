// cmd/ping/main.go
//
// Intended for Docker HEALTHCHECK:
//   HEALTHCHECK CMD ["/ping"]

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"reg-form/internal/config"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------
const (
	defaultPort          = 8080
	healthEndpoint       = "/healthz"
	expectedHealthStatus = "ok"
	requestTimeout       = 1 * time.Second

	// exit codes
	codeRequestFailed     = 2
	codeBadHTTPStatus     = 3
	codeDecodeError       = 4
	codeReportedUnhealthy = 5
)

var (
	errBadHTTPStatus     = errors.New("unexpected HTTP status")
	errDecode            = errors.New("decode error")
	errReportedUnhealthy = errors.New("service reported unhealthy")
)

// healthResp mirrors the /healthz body.
type healthResp struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func main() {
	port := detectPort()
	url := fmt.Sprintf("http://localhost:%d%s", port, healthEndpoint)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	h, err := probe(ctx, http.DefaultClient, url)
	if err != nil {
		log.Print(err)
		os.Exit(exitCode(err))
	}

	log.Printf("service healthy on port %d (uptime %s)", port, h.Uptime)
}

// probe asks url for health. An empty body counts as healthy.
func probe(ctx context.Context, client *http.Client, url string) (healthResp, error) {
	var h healthResp

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return h, fmt.Errorf("request failed: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return h, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return h, fmt.Errorf("%w %d", errBadHTTPStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return h, fmt.Errorf("%w: %w", errDecode, err)
	}
	if h.Status != "" && h.Status != expectedHealthStatus {
		return h, fmt.Errorf("%w: %q", errReportedUnhealthy, h.Status)
	}
	return h, nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errBadHTTPStatus):
		return codeBadHTTPStatus
	case errors.Is(err, errDecode):
		return codeDecodeError
	case errors.Is(err, errReportedUnhealthy):
		return codeReportedUnhealthy
	}
	return codeRequestFailed
}

// detectPort reads APP_PORT the way the server does (.env, then env) and
// falls back to defaultPort when the config does not load.
func detectPort() int {
	cfg, err := config.Load()
	if err != nil {
		return defaultPort
	}
	return cfg.AppPort
}
