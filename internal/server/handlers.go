package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"autoviz/internal/config"
	"autoviz/internal/connector"
	"autoviz/internal/dataset"
	"autoviz/internal/insight"
	"autoviz/internal/profile"
)

const maxBodySize = 64 << 20

type handler struct {
	cfg *config.Global
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// readTable materializes the request body. Content-Type selects the format;
// anything that is not JSON is treated as CSV.
func (h *handler) readTable(r *http.Request) (*dataset.Table, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	opt := connector.Options{MaxRows: h.cfg.MaxRows}
	if strings.Contains(r.Header.Get("Content-Type"), "json") {
		return connector.ParseJSON(raw, opt)
	}
	return connector.ParseCSV(raw, opt)
}

func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	t, err := h.readTable(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := profile.Profile(t)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, p)
}

func (h *handler) suggest(w http.ResponseWriter, r *http.Request) {
	t, err := h.readTable(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	p, err := profile.Profile(t)
	if err != nil {
		badRequest(w, err)
		return
	}
	type suggestion struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	}
	out := make([]suggestion, 0, len(p.SuggestedVisualizations))
	for _, viz := range p.SuggestedVisualizations {
		out = append(out, suggestion{Type: viz, Confidence: p.ConfidenceScores[viz]})
	}
	writeJSON(w, out)
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	t, err := h.readTable(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	vizType := r.URL.Query().Get("type")
	if vizType == "" {
		vizType, _, err = profile.Decide(t, "")
		if err != nil {
			badRequest(w, err)
			return
		}
	}
	rep, err := insight.Analyze(t, vizType)
	if err != nil {
		badRequest(w, err)
		return
	}
	writeJSON(w, rep)
}

func badRequest(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
