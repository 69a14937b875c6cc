package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"

	"maulepro-server/core/browser"
	"maulepro-server/core/loader"
	"maulepro-server/core/logger"
	"maulepro-server/core/middleware/accesslog"
	"maulepro-server/core/middleware/cors"
	"maulepro-server/core/middleware/rayid"
	"maulepro-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Server.
type State int32

const (
	Stopped State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	default:
		return "stopped"
	}
}

// Server is the local static server: one fiber app bound to one listener.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
	opener browser.Opener
	out    io.Writer
	state  atomic.Int32
}

// Option customises a Server.
type Option func(*Server)

// WithOpener sets the post-start browser hook. A nil opener disables it.
func WithOpener(o browser.Opener) Option {
	return func(s *Server) {
		s.opener = o
	}
}

// WithOutput redirects the console banner, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Server) {
		s.out = w
	}
}

// New builds the fiber app for cfg. cfg.Root must already be resolved.
func New(cfg Config, l *zap.Logger, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: l,
		out:    os.Stdout,
	}
	if cfg.OpenBrowser {
		s.opener = browser.System()
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own banner
		UnescapePath:          true,
		ErrorHandler:          s.handleError,
	})

	// RayID first so every later log line can be correlated.
	s.app.Use(rayid.New())
	s.app.Use(cors.New())
	s.app.Use(accesslog.New(l))
	s.app.Use(recover.New())

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(static.Options{
		Root:   cfg.Root,
		Index:  cfg.Index,
		Browse: cfg.Browse,
	}, l))

	loaded, err := mgr.LoadAll(s.app)
	if err != nil {
		return nil, err
	}
	l.Debug("Features loaded", zap.Strings("features", loaded))

	return s, nil
}

// App exposes the underlying fiber app, mainly for in-process tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Config returns the configuration the server was built with.
func (s *Server) Config() Config {
	return s.cfg
}

// State reports whether the server is currently listening.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Start binds cfg.Addr() and serves until ctx is cancelled.
// A bind failure is returned immediately, wrapped in ErrBind, and leaves
// nothing running.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrBind, s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve runs the serve loop on ln until ctx is cancelled, then stops
// accepting connections, lets in-flight requests drain for at most the
// shutdown timeout and releases ln. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.state.Store(int32(Listening))
	defer s.state.Store(int32(Stopped))

	s.logger.Info("Starting server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.cfg.Root),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	PrintBanner(s.out, s.cfg)
	if s.opener != nil {
		browser.Launch(s.out, s.opener, s.cfg.URLs()[0], s.logger)
	}

	select {
	case err := <-errCh:
		// The loop only ends on its own when the listener breaks.
		_ = ln.Close()
		if err == nil {
			err = errors.New("listener closed unexpectedly")
		}
		return fmt.Errorf("serve loop stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	if err := s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout()); err != nil {
		s.logger.Warn("Shutdown did not complete cleanly", zap.Error(err))
	}
	// Shutdown only closes listeners the loop has registered; closing ln
	// again covers a cancel that lands before the loop got that far.
	_ = ln.Close()
	if err := <-errCh; err != nil {
		s.logger.Debug("Serve loop returned", zap.Error(err))
	}

	PrintShutdown(s.out)
	return nil
}

// handleError renders errors from the handler chain. It runs after the
// middleware stack has returned, so it sets the CORS header itself.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		logger.WithRayID(s.logger, c).Error("Unhandled request error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	c.Set(fiber.HeaderAccessControlAllowOrigin, cors.AllowAll)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
