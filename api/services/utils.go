package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cristiano1098/socializeAPP/db"
	"github.com/cristiano1098/socializeAPP/internal/events"
	"github.com/cristiano1098/socializeAPP/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}, location ...string) {

	w.Header().Set("Content-Type", "application/json")

	// We don't want to cache API responses so the client receives most curent data
	w.Header().Set("Cache-Control", "max-age=0")

	// Conditionally set the Location header if provided
	if len(location) > 0 && location[0] != "" {
		w.Header().Set("Location", location[0])
	}

	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// pathID reads a positive integer key from the route variables.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// statusFor maps a store error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, db.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a failed Response envelope.
func writeError(w http.ResponseWriter, statusCode int, code, details string) {
	WriteResponse(w, statusCode, models.Response{
		Success:      0,
		ErrorCode:    code,
		ErrorDetails: details,
	})
}

// writeStoreError logs a store failure and writes the matching status.
// Internal errors are not echoed back to the client.
func writeStoreError(w http.ResponseWriter, logger *zerolog.Logger, err error, msg string) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		logger.Warn().Err(err).Msg(msg)
		writeError(w, status, "not_found", err.Error())
	case http.StatusConflict:
		logger.Warn().Err(err).Msg(msg)
		writeError(w, status, "conflict", err.Error())
	case http.StatusBadRequest:
		logger.Warn().Err(err).Msg(msg)
		writeError(w, status, "invalid_argument", err.Error())
	default:
		logger.Error().Err(err).Msg(msg)
		writeError(w, status, "internal_error", msg)
	}
}

// publish sends an event after a committed write. Failures are logged and
// counted but never surface to the caller.
func (svc *Service) publish(logger *zerolog.Logger, event events.GroupEvent) {
	if svc.Publisher == nil {
		return
	}
	if err := svc.Publisher.Notify(event); err != nil {
		logger.Error().Err(err).
			Str("action", string(event.Action)).
			Int64("group_id", event.GroupID).
			Msg("Failed to publish group event")
		if svc.Metrics != nil {
			svc.Metrics.RecordPublishFailure()
		}
	}
}
