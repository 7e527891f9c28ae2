package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/hireflow/internal/agents"
	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/db"
	"github.com/jonathan/hireflow/internal/ingestion"
	"github.com/jonathan/hireflow/internal/llm"
	"github.com/jonathan/hireflow/internal/mail"
	"github.com/jonathan/hireflow/internal/pipeline"
	"github.com/jonathan/hireflow/internal/server/middleware"
)

// Server represents the HTTP server and its wired workflows.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	llmClient  llm.Client
	logger     *zap.Logger
	validator  *validator.Validate

	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	candidates *pipeline.CandidateService
	jobs       *pipeline.JobService
	matches    *pipeline.MatchService
	interviews *pipeline.InterviewService
}

// Config holds server configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	SMTP         mail.SMTPConfig
	Logger       *zap.Logger
}

// New creates a server instance: connects the database, applies the
// schema, and constructs the shared agent handles once. The agents are
// stateless; every workflow invocation receives them explicitly.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := &Server{
		db:        database,
		llmClient: llmClient,
		logger:    logger,
		validator: validator.New(),
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	extractor := agents.NewExtractor(llmClient)
	scorer := agents.NewScorer(llmClient)
	drafter := agents.NewDrafter(llmClient)
	mailer := mail.NewMailer(cfg.SMTP, logger)

	s.candidates = pipeline.NewCandidateService(database, extractor, ingestion.ExtractText, logger)
	s.jobs = pipeline.NewJobService(database, extractor, logger)
	s.matches = pipeline.NewMatchService(database, scorer, logger)
	s.interviews = pipeline.NewInterviewService(database, drafter, mailer, logger)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // agent calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the router. Everything outside /auth and /health
// requires a bearer access token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", s.authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", s.authHandler.Logout)

	authMW := middleware.Auth(s.jwtService.AsTokenValidator())
	protect := func(h http.HandlerFunc) http.Handler { return authMW(h) }

	// Candidates
	mux.Handle("POST /candidates/upload", protect(s.handleUploadCandidate))
	mux.Handle("POST /candidates", protect(s.handleCreateCandidate))
	mux.Handle("GET /candidates", protect(s.handleListCandidates))
	mux.Handle("GET /candidates/{id}", protect(s.handleGetCandidate))
	mux.Handle("GET /candidates/{id}/interviews", protect(s.handleListCandidateInterviews))

	// Jobs
	mux.Handle("POST /jobs/extract", protect(s.handleExtractJob))
	mux.Handle("POST /jobs", protect(s.handleCreateJob))
	mux.Handle("GET /jobs", protect(s.handleListJobs))
	mux.Handle("GET /jobs/{id}", protect(s.handleGetJob))
	mux.Handle("GET /jobs/{id}/matches", protect(s.handleListJobMatches))

	// Matches
	mux.Handle("POST /matches", protect(s.handleCreateMatch))
	mux.Handle("GET /matches", protect(s.handleListMatches))

	// Interviews
	mux.Handle("POST /interviews", protect(s.handleScheduleInterview))
	mux.Handle("GET /interviews", protect(s.handleListInterviews))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	_ = s.llmClient.Close()
	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
