// Package web provides the list-ui web server: routing, session store,
// middleware and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"list-ui/config"
	"list-ui/logger"
	"list-ui/util/common"
	"list-ui/util/random"
	"list-ui/web/controller"
	"list-ui/web/job"
	"list-ui/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/atomic"
)

const sessionCookieName = "list-ui"

// Server is the list-ui web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index *controller.IndexController
	oauth *controller.OAuthController
	items *controller.ItemController

	cron    *cron.Cron
	started atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	if webDomain := config.GetWebDomain(); webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	secret := config.GetSessionSecret()
	if secret == "" {
		logger.Warning("LISTUI_SESSION_SECRET not set, using a random secret; sessions will not survive restarts")
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	engine.Use(sessions.Sessions(sessionCookieName, store))

	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/panel/api/"}),
	))

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.oauth = controller.NewOAuthController(g)
	s.items = controller.NewItemController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
	s.cron.AddJob("@daily", job.NewClearLogsJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()
	s.started.Store(true)

	return nil
}

// IsRunning reports whether Start has completed and Stop has not been called.
func (s *Server) IsRunning() bool {
	return s.started.Load()
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.started.Store(false)
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}

	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(context.Background())
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
