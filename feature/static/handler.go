package static

import (
	"net/http"
	"net/url"
	"strings"

	"maulepro-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Options configures how the served directory is exposed.
type Options struct {
	// Root is the absolute served directory.
	Root string
	// Index is the file served for directory requests.
	Index string
	// Browse lists directories that have no index file.
	Browse bool
}

// Handler serves files out of a directory.
type Handler struct {
	fs     http.FileSystem
	opts   Options
	logger *zap.Logger
}

// NewHandler creates a new static-file handler.
func NewHandler(opts Options, l *zap.Logger) *Handler {
	if opts.Index == "" {
		opts.Index = "index.html"
	}
	// filesystem appends Index to the directory path verbatim.
	opts.Index = "/" + strings.TrimPrefix(opts.Index, "/")
	return &Handler{
		fs:     http.Dir(opts.Root),
		opts:   opts,
		logger: l,
	}
}

// RegisterRoutes mounts the handler on every path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleDirectoryRedirect)
	app.Use(filesystem.New(filesystem.Config{
		Root:   h.fs,
		Index:  h.opts.Index,
		Browse: h.opts.Browse,
	}))
}

// HandleDirectoryRedirect redirects /dir to /dir/ when dir is a directory,
// keeping the query string.
func (h *Handler) HandleDirectoryRedirect(c *fiber.Ctx) error {
	method := c.Method()
	if method != fiber.MethodGet && method != fiber.MethodHead {
		return c.Next()
	}

	path := c.Path()
	if strings.HasSuffix(path, "/") {
		return c.Next()
	}

	f, err := h.fs.Open(path)
	if err != nil {
		return c.Next()
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil || !info.IsDir() {
		return c.Next()
	}

	// c.Path() is decoded; re-escape so names with '#', '?' or spaces
	// point back at the same directory.
	target := (&url.URL{Path: path}).EscapedPath() + "/"
	if q := c.Context().QueryArgs().QueryString(); len(q) > 0 {
		target += "?" + string(q)
	}

	logger.WithRayID(h.logger, c).Debug("Redirecting directory request",
		zap.String("from", path),
		zap.String("to", target),
	)
	return c.Redirect(target, fiber.StatusMovedPermanently)
}
