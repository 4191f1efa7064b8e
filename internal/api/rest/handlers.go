package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/service"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

// Dashboards is the slice of the dashboard service the handlers use
type Dashboards interface {
	Run(ctx context.Context, req service.Request) (*service.Dashboard, error)
	ResolvePlayer(ctx context.Context, name string) (directory.PlayerIdentity, error)
	ResolveTeam(ctx context.Context, name string) (directory.TeamIdentity, error)
	Presets() config.Dashboard
}

// HealthChecker reports backing store health
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	dashboards Dashboards
	health     HealthChecker
}

// NewHandler creates a new handler. health may be nil.
func NewHandler(dashboards Dashboards, health HealthChecker) *Handler {
	return &Handler{dashboards: dashboards, health: health}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.HealthCheck(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "Store unavailable", err)
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// ResolvePlayer maps a full player name to its identity
func (h *Handler) ResolvePlayer(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing name parameter", nil)
		return
	}

	player, err := h.dashboards.ResolvePlayer(r.Context(), name)
	if err != nil {
		respondLookupError(w, "Player '"+name+"' not found! Check the name.", err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

// ResolveTeam maps a full team name to its identity
func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Missing name parameter", nil)
		return
	}

	team, err := h.dashboards.ResolveTeam(r.Context(), name)
	if err != nil {
		respondLookupError(w, "Team '"+name+"' not found! Check the name.", err)
		return
	}
	respondJSON(w, http.StatusOK, team)
}

// GetDashboard runs the full pipeline and returns it as JSON
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.dashboards.Run(r.Context(), parseRequest(r))
	if err != nil {
		respondRunError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dash)
}

// GetChart renders one panel of a dashboard as SVG. With compare set, the
// comparison panel for the stat is drawn.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)
	st := gamelog.StatPoints
	if req.Stat != "" {
		parsed, err := gamelog.ParseStat(req.Stat)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid stat", err)
			return
		}
		st = parsed
	}

	dash, err := h.dashboards.Run(r.Context(), req)
	if err != nil {
		respondRunError(w, err)
		return
	}

	panel := selectPanel(dash, st)
	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, panel); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func selectPanel(dash *service.Dashboard, st gamelog.Stat) chart.Panel {
	if p, ok := chart.Find(dash.Comparison, st); ok {
		return p
	}
	if primary := dash.Primary(); primary != nil {
		if p, ok := chart.Find(primary.Panels, st); ok {
			return p
		}
		return chart.Panel{
			Title:  primary.Player.Name + ": " + st.Label(),
			Stat:   st,
			Series: []chart.Series{{Name: primary.Player.Name, Stat: st}},
		}
	}
	return chart.Panel{Title: st.Label(), Stat: st, Series: []chart.Series{{Stat: st}}}
}

// parseRequest reads dashboard parameters from the query string
func parseRequest(r *http.Request) service.Request {
	q := r.URL.Query()
	exact, _ := strconv.ParseBool(q.Get("exact"))
	return service.Request{
		Player:        q.Get("player"),
		ComparePlayer: q.Get("compare"),
		Seasons:       nonEmpty(q["season"]),
		From:          q.Get("from"),
		To:            q.Get("to"),
		Location:      q.Get("location"),
		Opponent:      q.Get("opponent"),
		OpponentExact: exact,
		Stat:          q.Get("stat"),
		Surface:       "rest",
	}
}

func nonEmpty(xs []string) []string {
	var out []string
	for _, x := range xs {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

func respondLookupError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, directory.ErrNotFound) {
		respondError(w, http.StatusNotFound, message, err)
		return
	}
	respondError(w, http.StatusBadGateway, "Directory source unavailable", err)
}

func respondRunError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidRequest) {
		respondError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}
	respondError(w, http.StatusBadGateway, "Failed to build dashboard", err)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
