package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/pipeline"
	"github.com/jonathan/hireflow/internal/server/middleware"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// principal resolves the authenticated principal or writes a 401 and
// reports false. The auth middleware guarantees presence on protected
// routes; this guards against wiring mistakes.
func (s *Server) principal(w http.ResponseWriter, r *http.Request) (pipeline.Principal, bool) {
	principal, err := middleware.GetPrincipal(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return pipeline.Principal{}, false
	}
	return principal, true
}

// respondError maps a workflow error onto its HTTP status. Internal
// errors are logged but not leaked to the client.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

// pagination reads offset/limit query parameters, clamping bad values
// to the defaults.
func pagination(r *http.Request) (offset, limit int) {
	offset = parseQueryInt(r, "offset", 0)
	limit = parseQueryInt(r, "limit", defaultPageLimit)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return offset, limit
}

func parseQueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
