package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/filmtix/ticketing/api"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.config.Env = "test"
	})

	w, r := executeRequest(t, http.MethodGet, "/health", nil)

	app.GetHealth(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp api.HealthcheckResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "UP" {
		t.Errorf("status = %q, want %q", resp.Status, "UP")
	}

	if resp.SystemInfo.Environment != "test" {
		t.Errorf("environment = %q, want %q", resp.SystemInfo.Environment, "test")
	}
}
