package rest

import (
	"context"
	"net"
	"time"

	"github.com/VladPetriv/finance_tracker/internal/service"
	"github.com/VladPetriv/finance_tracker/pkg/database"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

const defaultRequestTimeout = 15 * time.Second

// Server represents the HTTP API of the finance tracker.
type Server struct {
	logger         *logger.Logger
	services       service.Services
	db             database.Database
	requestTimeout time.Duration
	address        string
	server         *fasthttp.Server
}

// Options represents options that required for creating new instance of the HTTP API.
type Options struct {
	Logger   *logger.Logger
	Services service.Services
	// Database is pinged by the health endpoint.
	Database database.Database
	// Address represents an address on which we'll start a server.
	Address string
	// RequestTimeout bounds every call to the services.
	RequestTimeout time.Duration
}

// New creates a new instance of the HTTP API.
func New(opts Options) *Server {
	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	s := &Server{
		logger:         opts.Logger.Named("rest"),
		services:       opts.Services,
		db:             opts.Database,
		requestTimeout: requestTimeout,
		address:        opts.Address,
	}

	s.server = &fasthttp.Server{
		Name:    "finance_tracker",
		Handler: s.Handler(),
	}

	return s
}

// Handler returns the root request handler with all routes and middlewares.
func (s *Server) Handler() fasthttp.RequestHandler {
	r := router.New()

	r.GET("/health", s.health)

	r.POST("/api/categories/add", s.addCategory)
	r.GET("/api/categories", s.listCategories)

	r.POST("/api/transactions/add", s.addTransaction)
	r.GET("/api/transactions", s.listTransactions)
	r.DELETE("/api/transactions/{id}", s.deleteTransaction)

	r.GlobalOPTIONS = preflight
	r.NotFound = notFound
	r.PanicHandler = s.recoverPanic

	return s.logRequests(withCORS(r.Handler))
}

// ListenAndServe starts accepting connections on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("address", s.address).Msg("server is running")
	return s.server.ListenAndServe(s.address)
}

// Serve starts accepting connections from the given listener.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info().Str("address", ln.Addr().String()).Msg("server is running")
	return s.server.Serve(ln)
}

// Shutdown gracefully stops the server, waiting for active requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.ShutdownWithContext(ctx)
}

// requestContext returns a context bounded by the configured request timeout.
// RequestCtx is not used as a parent, its Done channel belongs to the server and not to the request.
func (s *Server) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.requestTimeout)
}
