package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/articulex/chord"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/score"
	"github.com/jsphweid/articulex/spanner"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// request bodies above this size are rejected
const maxRequestBytes = 8 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "port to listen on")
	serveCmd.Flags().StringSlice("origins", nil, "allowed CORS origins")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves articulation rendering over HTTP",
	Long: `Serves articulation rendering over HTTP.

  POST /render          body {"score": <score document>}
  GET  /profile/{type}  pattern of one articulation type
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		srv := NewServer(p, newFilter(cfg), cfg.Render.Workers, logger.ComponentLogger("server"))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, ":"+cfg.Server.Port, cfg.Server.Origins)
	},
}

type ctxKey int

const requestIDKey ctxKey = iota

// Server answers render requests against one profile.
type Server struct {
	parser  *chord.Parser
	profile *profile.Profile
	filter  spanner.DefaultFilter
	workers int
	log     *zap.SugaredLogger
}

func NewServer(p *profile.Profile, filter spanner.DefaultFilter, workers int, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		parser:  chord.NewParser(log.Named("chord")),
		profile: p,
		filter:  filter,
		workers: workers,
		log:     log,
	}
}

// Handler routes requests and applies CORS for origins.
func (s *Server) Handler(origins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/render", s.HandleRender).Methods(http.MethodPost)
	router.HandleFunc("/profile/{type}", s.HandlePattern).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string, origins []string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(origins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("Listening", logger.FieldAddress, addr, logger.FieldProfile, s.profile.Name)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Infow("Shutting down")
		return errors.Wrap(httpServer.Shutdown(shutdownCtx), "shutting down")
	}
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
		s.log.Debugw("Handled request",
			logger.FieldRequestID, id,
			logger.FieldMethod, r.Method,
			logger.FieldPath, r.URL.Path,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]string{"status": "ok", "profile": s.profile.Name})
}

func (s *Server) HandleRender(w http.ResponseWriter, r *http.Request) {
	var req model.RenderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, errors.Wrap(err, "decoding request"))
		return
	}
	if len(req.Score) == 0 {
		s.fail(w, r, http.StatusBadRequest, errors.New("request has no score"))
		return
	}
	sc, err := score.Parse(req.Score)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	filter := s.filter
	if len(req.MutedStaves) > 0 || len(req.MutedParts) > 0 {
		filter = spanner.NewFilter(req.MutedStaves, req.MutedParts)
	}

	resp, err := renderScore(r.Context(), s.parser, sc, s.profile, filter, s.workers)
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	resp.RequestID = requestID(r)
	s.log.Infow("Rendered score",
		logger.FieldRequestID, resp.RequestID,
		logger.FieldScore, resp.Title,
		logger.FieldCount, len(resp.Chords))
	s.respond(w, r, http.StatusOK, resp)
}

func (s *Server) HandlePattern(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["type"]
	t, ok := model.ParseArticulationType(name)
	if !ok {
		s.fail(w, r, http.StatusBadRequest, errors.Newf("unknown articulation type %q", name))
		return
	}
	pattern := s.profile.Pattern(t)
	if pattern == nil {
		s.fail(w, r, http.StatusNotFound, errors.Newf("profile %q has no pattern for %s", s.profile.Name, t))
		return
	}
	s.respond(w, r, http.StatusOK, pattern)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnw("Could not write response", logger.FieldRequestID, requestID(r), logger.FieldError, err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Infow("Request failed",
		logger.FieldRequestID, requestID(r),
		logger.FieldStatus, status,
		logger.FieldError, err)
	s.respond(w, r, status, model.ErrorResponse{RequestID: requestID(r), Error: err.Error()})
}
