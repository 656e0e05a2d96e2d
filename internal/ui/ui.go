package ui

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/me/vita/internal/api"
)

// UI handles the web user interface. All data comes from the Vita API
// through the shared client; the UI holds no state of its own beyond
// the client's session.
type UI struct {
	client    *api.Client
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new UI handler backed by the given API client.
func New(client *api.Client, logger *slog.Logger) *UI {
	return &UI{
		client:    client,
		logger:    logger.With("component", "ui"),
		startTime: time.Now(),
	}
}

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	ui.renderStatus(w, http.StatusOK, template, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, template string, data map[string]any) {
	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - Vita",
		"User":    ui.client.Session().Current(),
		"Message": message,
	}
	if err != nil {
		data["Detail"] = api.ErrorMessage(err)
	}
	ui.renderStatus(w, http.StatusInternalServerError, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	data := map[string]any{
		"Title":   "Not Found - Vita",
		"User":    ui.client.Session().Current(),
		"Message": message,
	}
	ui.renderStatus(w, http.StatusNotFound, "error", data)
}
