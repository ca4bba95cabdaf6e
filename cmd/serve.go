package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loi-rocket/dealflow-cli/internal/model"
	"github.com/loi-rocket/dealflow-cli/internal/pipeline"
	"github.com/loi-rocket/dealflow-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Deal.Validate(); err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", handleHealth)
		r.Post("/analyze", handleAnalyze)
		r.Get("/runs", handleRuns)
		r.Get("/runs/{runID}", handleRun)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs the full pipeline over the listings in the request body
// and returns the analyzed results synchronously.
func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Listings []model.ListingRawData `json:"listings"`
		AsOf     string                 `json:"as_of,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Listings) == 0 {
		writeJSONError(w, http.StatusBadRequest, "listings is required")
		return
	}

	asOf := time.Now()
	if req.AsOf != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "as_of must be YYYY-MM-DD")
			return
		}
	}

	analyzer, err := pipeline.New(&cfg.Deal, asOf)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	batch, err := analyzer.MapBatch(r.Context(), req.Listings, cfg.Batch.MaxConcurrentListings)
	if err != nil {
		zap.L().Error("analyze request failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summary": batch.Summarize(),
		"results": batch.Results,
	})
}

func handleRuns(w http.ResponseWriter, r *http.Request) {
	st, err := initStore(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(r.Context()); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "store migrate failed")
		return
	}

	runs, err := st.ListRuns(r.Context(), storeFilterFromQuery(r))
	if err != nil {
		zap.L().Error("list runs failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "list runs failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func handleRun(w http.ResponseWriter, r *http.Request) {
	st, err := initStore(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(r.Context()); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "store migrate failed")
		return
	}

	runID := chi.URLParam(r, "runID")
	run, err := st.GetRun(r.Context(), runID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "run not found")
		return
	}

	results, err := st.ListResults(r.Context(), runID)
	if err != nil {
		zap.L().Error("list results failed", zap.String("run_id", runID), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "list results failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"run": run, "results": results})
}

func storeFilterFromQuery(r *http.Request) store.RunFilter {
	f := store.RunFilter{Limit: 50}
	if s := r.URL.Query().Get("status"); s != "" {
		f.Status = model.RunStatus(s)
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			f.Limit = n
		}
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
