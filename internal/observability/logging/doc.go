// Package logging builds the slog loggers used by the API and the worker and
// annotates them with per-request identifiers.
//
//	logger := logging.NewLogger()
//	logging.ForRequest(r.Context(), logger).Info("article created", slog.Int64("id", id))
package logging
