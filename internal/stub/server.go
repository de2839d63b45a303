package stub

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bharatsindhu/username-history/internal/history"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	PreviousPageCursor *string         `json:"previousPageCursor"`
	NextPageCursor     *string         `json:"nextPageCursor"`
	Data               []history.Entry `json:"data"`
}

var errInvalidUser = apiError{Code: 3, Message: "The user id is invalid."}

// NewRouter exposes provider under the users API path layout.
func NewRouter(provider Provider, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)
	r.HandleFunc("/v1/users/{id}/username-history", historyHandler(provider)).Methods(http.MethodGet)

	return requestLogger(logger)(recoveryHandler(r))
}

func historyHandler(provider Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, errInvalidUser)
			return
		}

		entries, err := provider.History(r.Context(), history.UserID(raw))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeErrors(w, http.StatusBadRequest, errInvalidUser)
				return
			}
			writeErrors(w, http.StatusInternalServerError, apiError{Code: 0, Message: err.Error()})
			return
		}

		limit, offset, err := pageParams(r)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, apiError{Code: 0, Message: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, page(entries, limit, offset))
	}
}

func pageParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, fmt.Errorf("invalid limit %q", v)
		}
	}
	if v := r.URL.Query().Get("cursor"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid cursor %q", v)
		}
	}
	return limit, offset, nil
}

func page(entries []history.Entry, limit, offset int) envelope {
	if offset > len(entries) {
		offset = len(entries)
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}

	env := envelope{Data: entries[offset:end]}
	if offset > 0 {
		prev := strconv.Itoa(max(offset-limit, 0))
		env.PreviousPageCursor = &prev
	}
	if end < len(entries) {
		next := strconv.Itoa(end)
		env.NextPageCursor = &next
	}
	return env
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrors(w http.ResponseWriter, status int, errs ...apiError) {
	writeJSON(w, status, map[string][]apiError{"errors": errs})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rr, r)

			logger.Info("request complete",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rr.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", uuid.NewString(),
			)
		})
	}
}

func recoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeErrors(w, http.StatusInternalServerError, apiError{Message: fmt.Sprintf("panic: %v", rec)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseRecorder captures the status for the request log.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}
