// File path: internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"hansebot/internal/common"
	"hansebot/internal/resolver"
)

type resolveRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: resolve decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("message required"))
		return
	}
	logger.Info("api: resolve request received", "message_length", len(req.Message))
	resolution, err := s.resolver.Resolve(r.Context(), req.Message, req.Model)
	if err != nil {
		if errors.Is(err, resolver.ErrEmptyUtterance) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resolution)
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.resolver.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	force := true
	if raw := strings.TrimSpace(r.URL.Query().Get("force")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid force parameter %q", raw))
			return
		}
		force = parsed
	}
	count, err := s.resolver.RefreshKnowledge(r.Context(), force)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": count})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	dropped := s.resolver.ClearResponseCache()
	writeJSON(w, http.StatusOK, map[string]interface{}{"dropped": dropped})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}
