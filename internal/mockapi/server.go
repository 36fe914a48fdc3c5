// transactions-check/internal/mockapi/server.go

// Package mockapi serves the transactions-by-customer endpoint with
// deterministic fixtures, including the misbehaving customers the suite
// is meant to catch. It exists so the checks and their tests run without
// the real upstream.
package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	m "github.com/example/transactions-check/pkg/metrics"

	"github.com/example/transactions-check/internal/transaction"
)

const serviceName = "mockapi"

func init() {
	// the upstream serves amounts as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Server struct {
	log  zerolog.Logger
	data map[string][]transaction.Transaction
}

func New(log zerolog.Logger) *Server {
	return &Server{log: log, data: fixtures()}
}

// Handler returns the routed handler, CORS-wrapped.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(metricsMiddleware)

	r.HandleFunc("/", s.transactionsHandler).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "service": serviceName})
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler())

	return cors.Default().Handler(r)
}

func (s *Server) transactionsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	customerID := q.Get("customerId")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "Missing customerId query parameter")
		return
	}
	if !transaction.ValidCustomerID(customerID) {
		writeError(w, http.StatusBadRequest, "Invalid customerId guid format")
		return
	}

	// unknown but well-formed ids behave like customers with no history
	txs := s.data[customerID]

	out := make([]transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !matchesFilters(tx, q) {
			continue
		}
		out = append(out, tx)
	}

	s.log.Info().
		Str("customer", customerID).
		Int("count", len(out)).
		Msg("serving transactions")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func matchesFilters(tx transaction.Transaction, q map[string][]string) bool {
	get := func(k string) string {
		if v, ok := q[k]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	if v := get("categoryId"); v != "" {
		want, err := strconv.Atoi(v)
		if err == nil && tx.CategoryID != want {
			return false
		}
	}
	if get("includePending") == "false" && tx.Status == transaction.StatusPending {
		return false
	}

	from, errFrom := time.Parse("2006-01-02", get("fromDate"))
	to, errTo := time.Parse("2006-01-02", get("toDate"))
	if errFrom == nil || errTo == nil {
		ts, err := transaction.ParseTimestamp(tx.Timestamp)
		if err != nil {
			// malformed timestamps pass through date filters untouched
			return true
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		if errFrom == nil && day.Before(from) {
			return false
		}
		if errTo == nil && day.After(to) {
			return false
		}
	}
	return true
}

// writeError emits the upstream's error convention: a bare JSON string.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, "%q", msg)
}

// metricsMiddleware measures duration and outcome per request.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusLabel := httpStatusToBiz(rec.status)
		m.IncRequest(serviceName, statusLabel, r.Method)
		m.ObserveDuration(serviceName, statusLabel, time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func httpStatusToBiz(code int) string {
	if code >= 200 && code < 400 {
		return "SUCCESS"
	}
	return "FAILED"
}
