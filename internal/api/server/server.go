package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tozoll/legal-ai-analyzer/internal/analyzer"
	"github.com/tozoll/legal-ai-analyzer/internal/api/handlers"
	"github.com/tozoll/legal-ai-analyzer/internal/api/middleware"
	"github.com/tozoll/legal-ai-analyzer/internal/archive"
	"github.com/tozoll/legal-ai-analyzer/internal/auth"
	"github.com/tozoll/legal-ai-analyzer/internal/config"
	"github.com/tozoll/legal-ai-analyzer/internal/store"
)

type Server struct {
	cfg      *config.Config
	users    *store.UserStore
	logs     *store.LogStore
	archive  *archive.Client
	analyzer analyzer.ContractAnalyzer
	sessions *auth.Sessions
	router   *gin.Engine
}

func New(cfg *config.Config, users *store.UserStore, logs *store.LogStore, arch *archive.Client, an analyzer.ContractAnalyzer) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		users:    users,
		logs:     logs,
		archive:  arch,
		analyzer: an,
		sessions: auth.NewSessions(cfg.Session.Secret),
		router:   gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// The session rides in a cookie, so credentials must be allowed and the
	// origins pinned (a wildcard origin cannot carry credentials).
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.cfg.CORSOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	s.router.Use(cors.New(corsConfig))
	s.router.MaxMultipartMemory = 32 << 20
}

func (s *Server) setupRoutes() {
	authHandler := handlers.NewAuthHandler(s.users, s.sessions, s.cfg.IsProduction())
	usersHandler := handlers.NewUsersHandler(s.users)
	logsHandler := handlers.NewLogsHandler(s.logs, s.users)
	analyzeHandler := handlers.NewAnalyzeHandler(s.analyzer, s.logs, s.archive)
	reportHandler := handlers.NewReportHandler(s.archive)

	api := s.router.Group("/api")

	// Public routes: liveness and login.
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "LexAI",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.POST("/auth/login", authHandler.Login)

	// Everything else requires a valid session cookie.
	protected := api.Group("/")
	protected.Use(middleware.RequireSession(s.sessions))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		protected.POST("/analyze", analyzeHandler.Analyze)
		protected.POST("/report/pdf", reportHandler.Export)

		protected.GET("/logs", logsHandler.List)

		protected.GET("/users", usersHandler.List)
		protected.POST("/users", usersHandler.Create)
		protected.DELETE("/users/:username", usersHandler.Delete)
	}
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server on the configured address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
