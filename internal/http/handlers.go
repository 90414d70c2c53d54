package http

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"mlb-apple-service/internal/domain/teams"
	"mlb-apple-service/internal/logging"
	"mlb-apple-service/internal/metrics"
	"mlb-apple-service/internal/store"
	"mlb-apple-service/internal/trigger"
	"mlb-apple-service/internal/watcher"
)

// Handler wires HTTP routes to the shared store and trigger queue.
type Handler struct {
	queue    *trigger.Queue
	store    *store.MemoryStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	statusFn func() watcher.Status
}

// NewHandler constructs a Handler.
func NewHandler(queue *trigger.Queue, st *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() watcher.Status) *Handler {
	return &Handler{
		queue:    queue,
		store:    st,
		logger:   logger,
		metrics:  recorder,
		statusFn: statusFn,
	}
}

// Index renders the team picker page.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	data := indexData{
		SelectedID: h.store.MonitoredTeam(),
		QueueDepth: h.queue.Depth(),
	}
	for _, t := range teams.All() {
		data.Teams = append(data.Teams, teamOption{ID: t.ID, Name: t.Name})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil && h.logger != nil {
		h.logger.Error("failed to render index", "err", err)
	}
}

// SetTeam updates the monitored team from a form post.
func (h *Handler) SetTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid form", h.logger)
		return
	}

	teamID, err := strconv.Atoi(r.PostFormValue("team_id"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	h.store.SetMonitoredTeam(teamID)
	logging.Info(loggerFromContext(r, h.logger), "monitored team updated", logging.FieldTeamID, teamID)
	writeText(w, nethttp.StatusOK, "Team updated", h.logger)
}

// ManualTrigger queues a manual actuator pulse.
func (h *Handler) ManualTrigger(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	h.queue.Enqueue(trigger.ReasonManual)
	if h.metrics != nil {
		h.metrics.RecordTriggerEnqueued(string(trigger.ReasonManual))
	}
	logging.Info(loggerFromContext(r, h.logger), "manual trigger queued")
	writeText(w, nethttp.StatusOK, "Trigger queued", h.logger)
}

// Trigger is polled by the physical client. Dequeuing here is the
// acknowledgment: a record returned in the body is gone from the queue.
func (h *Handler) Trigger(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rec, ok := h.queue.TryDequeue()
	if h.metrics != nil {
		h.metrics.RecordTriggerPoll(ok)
	}
	if !ok {
		writeText(w, nethttp.StatusOK, "NONE", h.logger)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "trigger delivered",
		logging.FieldReason, string(rec.Reason), "record_id", rec.ID)
	writeText(w, nethttp.StatusOK, "TRIGGER", h.logger)
}

// StatusResponse is the payload returned by /status.
type StatusResponse struct {
	MonitoredTeamID    int    `json:"monitored_team_id"`
	CurrentGamePk      int    `json:"current_game_id"`
	GameStatus         string `json:"game_status,omitempty"`
	PendingTriggers    int    `json:"pending_triggers"`
	LastEnqueuedAt     string `json:"last_enqueued_at,omitempty"`
	LastAcknowledgedAt string `json:"last_acknowledged_at,omitempty"`
}

// Status reports the current monitoring state.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	gamePk, gameStatus := h.store.TrackedGame()
	lastEnqueued, lastAcked := h.queue.Timestamps()

	resp := StatusResponse{
		MonitoredTeamID: h.store.MonitoredTeam(),
		CurrentGamePk:   gamePk,
		GameStatus:      gameStatus,
		PendingTriggers: h.queue.Depth(),
	}
	if !lastEnqueued.IsZero() {
		resp.LastEnqueuedAt = lastEnqueued.Format(time.RFC3339)
	}
	if !lastAcked.IsZero() {
		resp.LastAcknowledgedAt = lastAcked.Format(time.RFC3339)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on recent watcher health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}
