// Package logger provides structured logging with context-based attribute injection.
//
// It builds on the standard library's log/slog: New returns a JSON logger
// whose registered extractors pull operation-scoped values out of the
// context on every log call, so long-running operations such as variable
// imports tag all of their log lines consistently.
//
// # Basic Usage
//
//	log := logger.New(logger.WithExtractors(logger.ImportIDExtractor))
//
//	ctx := logger.WithImportID(ctx, uuid.New())
//	log.InfoContext(ctx, "import started") // includes import_id=...
//
// # Custom Extractors
//
// Any function matching [ContextExtractor] can be registered:
//
//	func userIDExtractor(ctx context.Context) (slog.Attr, bool) {
//		id, ok := ctx.Value(userIDKey{}).(string)
//		if !ok {
//			return slog.Attr{}, false
//		}
//		return slog.String("user_id", id), true
//	}
//
//	log := logger.New(logger.WithExtractors(logger.ImportIDExtractor, userIDExtractor))
//
// # Defaults
//
// New writes to os.Stdout at Info level; override with [WithWriter] and
// [WithLevel]. [NewDiscard] returns a logger that drops everything;
// packages accept it as the default so logging stays opt-in.
package logger
