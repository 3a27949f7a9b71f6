package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Option configures the logger built by New.
type Option func(*config)

type config struct {
	writer     io.Writer
	level      slog.Level
	extractors []ContextExtractor
}

// WithWriter sets the output destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithLevel sets the minimum log level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithExtractors registers context extractors. Each one runs on every log
// call so operation-scoped values (e.g. import IDs) land on each line.
// Nil extractors are dropped.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// New creates a JSON-formatted logger.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var h slog.Handler = slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
		Level: cfg.level,
	})
	if len(cfg.extractors) > 0 {
		h = &contextHandler{next: h, extractors: cfg.extractors}
	}
	return slog.New(h)
}

// NewDiscard creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// contextHandler runs the registered extractors on every Handle call and
// appends whatever attributes they produce before delegating.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

type importIDKey struct{}

// WithImportID returns a context carrying an import operation ID.
// Pair it with ImportIDExtractor so every log line produced while the
// import runs is tagged with the operation.
func WithImportID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, importIDKey{}, id)
}

// ImportIDExtractor extracts the import operation ID placed in the context
// by WithImportID.
func ImportIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(importIDKey{}).(uuid.UUID)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("import_id", id.String()), true
}
