package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mchmarny/adminnav/pkg/metric"
	"github.com/mchmarny/adminnav/pkg/navigation"
	"github.com/mchmarny/adminnav/pkg/registry"
)

// NavigationPath is where the admin UI fetches its navigation.
const NavigationPath = "/admin/navigation"

// Response is the payload returned by the navigation handler.
type Response struct {
	Items []*navigation.Array `json:"items"`
}

type handler struct {
	registry *registry.Registry
	requests metric.IncrementalCounter
	export   []navigation.ExportOption
}

// HandlerOption configures the navigation handler.
type HandlerOption func(*handler)

// WithRequestCounter counts served requests by status code.
func WithRequestCounter(c metric.IncrementalCounter) HandlerOption {
	return func(h *handler) {
		if c != nil {
			h.requests = c
		}
	}
}

// WithExportOptions passes opts to every serialization.
func WithExportOptions(opts ...navigation.ExportOption) HandlerOption {
	return func(h *handler) { h.export = append(h.export, opts...) }
}

// Handler returns an HTTP handler responding with the navigation assembled
// from reg. A new tree is built for every request.
func Handler(reg *registry.Registry, opts ...HandlerOption) http.Handler {
	h := &handler{
		registry: reg,
		requests: metric.NopCounter{},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ServeHTTP builds the navigation for the request and writes it as JSON.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling navigation request",
		"method", r.Method,
		"url", r.URL.Path,
	)

	root, err := h.registry.Navigation(r.Context())
	if err != nil {
		slog.Error("failed to build navigation", "error", err)
		h.writeError(w, http.StatusInternalServerError, "error, see logs for details")
		return
	}

	resp := Response{Items: root.ToArray(h.export...).Items}
	if resp.Items == nil {
		resp.Items = []*navigation.Array{}
	}

	h.writeJSON(w, http.StatusOK, resp)

	slog.Info("navigation response sent",
		"method", r.Method,
		"url", r.URL.Path,
		"items", len(resp.Items),
	)
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		status = http.StatusInternalServerError
		b = []byte(`{"error":"internal server error"}`)
	}

	h.requests.Increment(strconv.Itoa(status))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
