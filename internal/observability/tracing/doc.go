// Package tracing provides OpenTelemetry tracing integration.
//
// InitProvider installs the SDK tracer provider at startup, Middleware opens a
// server span per HTTP request and echoes its trace ID in X-Trace-Id, and
// StartSpan is used by use cases to add child spans.
//
// Example usage:
//
//	import "newsportal/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitProvider(1.0)
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func listArticles(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "article.ListPublished")
//	    defer span.End()
//	    // ...
//	}
package tracing
